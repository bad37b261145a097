package service

import (
	"context"
	"testing"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/mock"
	"github.com/sparkkhoj/spark-khoj/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientMessageService_Conversations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientMessageService(mockAdapter, logger.Nop())
	ctx := context.Background()

	mockAdapter.EXPECT().Conversations(ctx).Return([]models.Conversation{
		{CorrespondentID: 9, CorrespondentName: "B"},
	}, nil)

	conversations, err := svc.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, int64(9), conversations[0].CorrespondentID)
}

func TestClientMessageService_Conversation_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewClientMessageService(mock.NewMockServerAdapter(ctrl), logger.Nop())

	_, err := svc.Conversation(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientMessageService(mockAdapter, logger.Nop())
	ctx := context.Background()

	req := models.SendMessageRequest{RecipientID: 9, Body: "hello"}
	mockAdapter.EXPECT().SendMessage(ctx, req).Return(models.Message{MessageID: 1, RecipientID: 9, Body: "hello"}, nil)

	sent, err := svc.Send(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sent.MessageID)
}

func TestClientMessageService_Send_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewClientMessageService(mock.NewMockServerAdapter(ctrl), logger.Nop())

	_, err := svc.Send(context.Background(), models.SendMessageRequest{RecipientID: 9})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Send(context.Background(), models.SendMessageRequest{Body: "hello"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientProfileService_UpdateProfile_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewClientProfileService(mock.NewMockServerAdapter(ctrl), logger.Nop())

	_, err := svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
