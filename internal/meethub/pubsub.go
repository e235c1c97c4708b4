package meethub

import (
	"encoding/json"
	"log"

	"meetgo/backend/internal/models"
)

// StartEventListener subscribes to the redis event channels and feeds
// everything that arrives into PubSubCh for delivery by Run. Called once at
// startup, after Run is going.
func (m *ManagerService) StartEventListener() {
	go func() {
		pubsub := m.Storage.SubscribeEvents()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var ev models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("Error unmarshalling pub/sub event: %v", err)
				continue
			}
			m.PubSubCh <- ev
		}
	}()
}
