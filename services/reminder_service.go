package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pavilion-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the reminder job every day at 9 AM local time.
// Without Twilio credentials the scheduler stays off.
func (s *ReminderService) StartScheduler() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		log.Println("Reminder scheduler disabled: TWILIO_ACCOUNT_SID not set")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders texts every guest holding a confirmed reservation
// for today.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	today := time.Now().Format(models.DateFormat)

	var reservations []models.Reservation
	if err := s.db.Preload("Customer").Preload("Location").
		Where("date = ? AND status = ?", today, models.StatusConfirmed).
		Order("time ASC").
		Find(&reservations).Error; err != nil {
		log.Printf("Failed to fetch today's reservations: %v", err)
		return
	}

	for _, reservation := range reservations {
		s.sendReminder(&reservation)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendReminder(reservation *models.Reservation) {
	phone := reservation.Customer.Phone
	if phone == "" {
		return
	}

	message := fmt.Sprintf(
		"Hi %s, this is a reminder of your reservation %s today at %s for %d guests at %s. See you soon!",
		reservation.Customer.Name, reservation.ReservationNumber, reservation.Time,
		reservation.PartySize, reservation.Location.Name)

	// WhatsApp when the number is E.164, plain SMS otherwise.
	var to, from string
	if strings.HasPrefix(phone, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		to = "whatsapp:" + phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	} else {
		to = phone
		from = os.Getenv("TWILIO_PHONE_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder for %s: %v", reservation.ReservationNumber, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent for %s, SID: %s", reservation.ReservationNumber, *resp.Sid)
	} else {
		log.Printf("Reminder sent for %s, but no SID returned", reservation.ReservationNumber)
	}
}
