package notify

import (
	"log/slog"
	"time"

	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/model"

	"github.com/go-resty/resty/v2"
)

// Notifier 审核状态变更的 webhook 通知器，尽力而为，失败只记日志
type Notifier struct {
	client     *resty.Client
	webhookURL string
	log        *slog.Logger
}

// New 创建通知器，webhookURL 为空时所有通知都被跳过
func New(webhookURL string) *Notifier {
	return &Notifier{
		client:     resty.New().SetTimeout(10 * time.Second),
		webhookURL: webhookURL,
		log:        logger.New("Notify"),
	}
}

type statusChangedPayload struct {
	Event         string                  `json:"event"`
	ApplicationID uint                    `json:"application_id"`
	Name          string                  `json:"name"`
	Status        model.ApplicationStatus `json:"status"`
	ChangedAt     time.Time               `json:"changed_at"`
}

// ApplicationStatusChanged 异步推送状态变更事件，不阻塞调用方
func (n *Notifier) ApplicationStatusChanged(id uint, name string, status model.ApplicationStatus) {
	if n == nil || n.webhookURL == "" {
		return
	}

	payload := statusChangedPayload{
		Event:         "application.status_changed",
		ApplicationID: id,
		Name:          name,
		Status:        status,
		ChangedAt:     time.Now(),
	}

	go func() {
		resp, err := n.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(n.webhookURL)
		if err != nil {
			n.log.Warn("推送状态变更通知失败", "error", err, "application_id", id)
			return
		}
		if resp.IsError() {
			n.log.Warn("状态变更通知被拒绝",
				"status_code", resp.StatusCode(),
				"application_id", id,
			)
		}
	}()
}
