package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// HTTPNotifier - клиент внешнего диспетчера пуш-уведомлений.
// Доставка best-effort: ошибки логируются и не возвращаются наверх.
type HTTPNotifier struct {
	Address string
	client  *http.Client
}

func NewHTTPNotifier(address string) *HTTPNotifier {
	return &HTTPNotifier{
		Address: address,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (n *HTTPNotifier) Notify(payload PushPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal push payload: %v\n", err)
		return
	}

	resp, err := n.client.Post(fmt.Sprintf("%s/notifications", n.Address), "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("push notification failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("push notification returned status %d", resp.StatusCode)
	}
}
