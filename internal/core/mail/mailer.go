package mail

import (
	"context"

	"go.uber.org/zap"
)

// Mailer 邮件投递是外部协作方，这里只约定接口
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

// LogMailer 开发/测试用：把重置链接写进日志，不真正发信
type LogMailer struct {
	L       *zap.Logger
	BaseURL string
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, token string) error {
	m.L.Info("password reset mail",
		zap.String("to", to),
		zap.String("link", m.BaseURL+"/auth/reset-password?token="+token),
	)
	return nil
}
