// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a single direct message exchanged between two users.
type Message struct {
	// MessageID is the internal unique identifier of the message,
	// assigned by the database on insert.
	MessageID int64 `json:"messageId"`

	// SenderID is the user id of the author.
	SenderID int64 `json:"senderId"`

	// RecipientID is the user id of the addressee.
	RecipientID int64 `json:"recipientId"`

	// Body is the message text. Never empty for a persisted message.
	Body string `json:"body"`

	// CreatedAt is the timestamp when the message was sent.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// Conversation is an inbox row: the latest message exchanged with one
// correspondent, used by the client's messages screen.
type Conversation struct {
	// CorrespondentID is the other party of the conversation.
	CorrespondentID int64 `json:"correspondentId"`

	// CorrespondentName is the display name of the other party.
	CorrespondentName string `json:"correspondentName"`

	// LastMessage is the most recent message in either direction.
	LastMessage Message `json:"lastMessage"`
}
