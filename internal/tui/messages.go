package tui

import "github.com/sparkkhoj/spark-khoj/models"

// Result messages delivered by async commands. Each carries either a
// payload or the error the command ended with.

type loginDoneMsg struct {
	session models.Session
	err     error
}

type registerDoneMsg struct {
	response models.RegisterResponse
	err      error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type leaderboardLoadedMsg struct {
	entries []models.LeaderboardEntry
	err     error
}

type conversationsLoadedMsg struct {
	conversations []models.Conversation
	err           error
}

type conversationLoadedMsg struct {
	correspondentID int64
	messages        []models.Message
	err             error
}

type messageSentMsg struct {
	message models.Message
	err     error
}

type copiedMsg struct{ err error }

type clearStatusMsg struct{}
