package email

import (
	"fmt"

	"urbanhelp/models"
)

// BookingApprovalEmail renders the HTML body sent to a client when their
// booking is approved and a worker assigned.
func BookingApprovalEmail(b *models.Booking, serviceTitle string, worker *models.ApprovedWorker) string {
	if serviceTitle == "" {
		serviceTitle = "Service"
	}
	contact := worker.Phone
	if contact == "" {
		contact = worker.Email
	}
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
            <h2 style="color: #333;">Your Booking Has Been Approved!</h2>
            <p>Dear %s,</p>
            <p>We're pleased to inform you that your booking has been approved and a worker has been assigned.</p>

            <div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
                <h3 style="margin-top: 0;">Booking Details</h3>
                <p><strong>Service:</strong> %s</p>
                <p><strong>Date:</strong> %s</p>
                <p><strong>Time:</strong> %s</p>
                <p><strong>Duration:</strong> %s hours</p>
                <p><strong>Total Charge:</strong> $%.2f</p>
            </div>

            <div style="background-color: #f0f8ff; padding: 15px; border-radius: 5px; margin: 20px 0;">
                <h3 style="margin-top: 0;">Assigned Worker</h3>
                <p><strong>Name:</strong> %s</p>
                <p><strong>Contact:</strong> %s</p>
                <p><strong>Skills:</strong> %s</p>
            </div>

            <p>If you have any questions or need to make changes, please contact our support team.</p>
            <p>Thank you for choosing our services!</p>
        </div>
    `,
		b.ClientInfo.Name,
		serviceTitle,
		b.Date.Format("January 2, 2006"),
		b.Time,
		b.Duration,
		b.Charge,
		worker.Name,
		contact,
		worker.Skills,
	)
}

// PaymentConfirmationEmail renders the HTML body sent to a client when their
// payment is confirmed.
func PaymentConfirmationEmail(b *models.Booking, serviceTitle, transactionID string) string {
	if serviceTitle == "" {
		serviceTitle = "Service"
	}
	txnLine := ""
	if transactionID != "" {
		txnLine = fmt.Sprintf(`<p><strong>Transaction ID:</strong> %s</p>`, transactionID)
	}
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
            <h2 style="color: #333;">Payment Confirmed</h2>
            <p>Dear %s,</p>
            <p>We have received your payment. Your booking is now complete.</p>

            <div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
                <h3 style="margin-top: 0;">Payment Details</h3>
                <p><strong>Service:</strong> %s</p>
                <p><strong>Amount:</strong> $%.2f</p>
                <p><strong>Date:</strong> %s</p>
                %s
            </div>

            <p>Thank you for choosing our services!</p>
        </div>
    `,
		b.ClientInfo.Name,
		serviceTitle,
		b.Charge,
		b.Date.Format("January 2, 2006"),
		txnLine,
	)
}
