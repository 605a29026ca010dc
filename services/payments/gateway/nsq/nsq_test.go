package nsq

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/nsq/mocks"
)

func TestPublishPaymentEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)
	gw := NewNSQGateway(publisher)

	event := models.PaymentEvent{PaymentID: 4, DriverID: 2, TotalValue: decimal.NewFromInt(900), Rows: 3}

	publisher.EXPECT().Publish(gomock.Any(), constants.TopicPaymentCreated, event).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), constants.TopicPaymentDeleted, event).Return(errors.New("nsqd down"))

	assert.NoError(t, gw.PublishPaymentCreated(context.Background(), event))

	err := gw.PublishPaymentDeleted(context.Background(), event)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payment.deleted")
}
