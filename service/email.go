package service

import (
	"fmt"

	"laundry/config"
	"laundry/models"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOrderReadyEmail 订单洗好后通知顾客取衣/等待配送
func (s *EmailService) SendOrderReadyEmail(toEmail, username string, order *models.LaundryOrder) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EMAIL_ENABLED=true")
	}

	subject := fmt.Sprintf("【洗衣店】您的订单 #%d 已洗好", order.ID)
	body := s.generateOrderReadyBody(username, order)

	return s.sendEmail(toEmail, subject, body)
}

// generateOrderReadyBody 生成订单完成通知内容
func (s *EmailService) generateOrderReadyBody(username string, order *models.LaundryOrder) string {
	delivery := "请您携带取衣凭证到店取衣。"
	if order.HasPickupLocation() {
		delivery = fmt.Sprintf("我们会按您登记的地址（%s 楼 %s 室）送回。", order.FloorNumber, order.UnitNumber)
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #0ea5e9, #0369a1); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .order { background: #f0f9ff; border-left: 4px solid #0ea5e9; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .order p { margin: 0 0 6px; color: #0c4a6e; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🧺 洗衣店管理系统</h1>
        </div>
        <div class="content">
            <p>尊敬的 <strong>%s</strong>，您好！</p>
            <p>您的洗衣订单已处理完毕：</p>
            <div class="order">
                <p>订单编号：#%d</p>
                <p>洗衣类型：%s</p>
                <p>重量：%.2f 公斤</p>
                <p>金额：%.2f 元</p>
            </div>
            <p>%s</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 洗衣店管理系统</p>
        </div>
    </div>
</body>
</html>
`, username, order.ID, order.LaundryType, order.WeightKg, order.Price, delivery)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【洗衣店】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— 洗衣店管理系统</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
