package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"plantshop_backend/internal/config"
	"plantshop_backend/internal/models"
)

// SendOrderConfirmation gửi mail xác nhận đơn hàng. Chưa cấu hình SMTP
// thì bỏ qua, lỗi gửi chỉ ghi log: mail không được phép làm hỏng đơn.
func SendOrderConfirmation(order models.Order, to string) {
	host := os.Getenv("SMTP_HOST")
	if host == "" || to == "" {
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(config.Getenv("SMTP_FROM", "noreply@plantshop.vn")); err != nil {
		log.Println("❌ Lỗi địa chỉ gửi mail:", err)
		return
	}
	if err := msg.To(to); err != nil {
		log.Println("❌ Lỗi địa chỉ nhận mail:", err)
		return
	}
	msg.Subject("Xác nhận đơn hàng " + order.ID.Hex())
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("❌ Lỗi tạo SMTP client:", err)
		return
	}

	log.Println("📤 Gửi mail xác nhận đơn hàng tới", to)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("❌ Lỗi gửi mail:", err)
	}
}

func orderConfirmationHTML(order models.Order) string {
	rows := ""
	for _, item := range order.Items {
		rows += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.0fđ</td>
				<td>%.0fđ</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="vi">
<head><meta charset="UTF-8"><title>Xác nhận đơn hàng</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #2e7d32;">Cảm ơn bạn đã đặt hàng!</h2>
		<p>Đơn hàng của bạn đã được ghi nhận và đang chờ xử lý.</p>
		<table width="100%%" cellpadding="6" style="border-collapse: collapse;">
			<tr style="background-color: #f0f0f0;">
				<th align="left">Sản phẩm</th><th>SL</th><th>Đơn giá</th><th>Thành tiền</th>
			</tr>%s
		</table>
		<p>Phí vận chuyển (%s): %.0fđ</p>
		<p><strong>Tổng cộng: %.0fđ</strong></p>
		<p>Giao tới: %s (%s)</p>
	</div>
</body>
</html>`, rows, order.ShippingMethod, order.ShippingFee, order.TotalAmount, order.Address, order.PhoneNumber)
}
