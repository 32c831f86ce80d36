package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SMSStatus string

const (
	SMSStatusPending SMSStatus = "PENDING"
	SMSStatusQueued  SMSStatus = "QUEUED"
	SMSStatusSent    SMSStatus = "SENT"
	SMSStatusFailed  SMSStatus = "FAILED"
)

// SMSNotification is the message that travels through the Kafka topic.
type SMSNotification struct {
	ID        uuid.UUID `json:"id"`
	Mobile    string    `json:"mobile"`
	Message   string    `json:"message"`
	Status    SMSStatus `json:"status"`
	Attempts  int       `json:"attempts"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSMSNotification(mobile, message string) *SMSNotification {
	now := time.Now()
	return &SMSNotification{
		ID:        uuid.New(),
		Mobile:    mobile,
		Message:   message,
		Status:    SMSStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetPartitionKey keeps all messages for one recipient on the same
// partition so delivery order per mobile number is preserved.
func (n *SMSNotification) GetPartitionKey() string {
	return n.Mobile
}

func (n *SMSNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func SMSNotificationFromJSON(data []byte) (*SMSNotification, error) {
	var n SMSNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
