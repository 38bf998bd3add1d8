// utils/notification_utils.go
package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/models"
	"github.com/ashwinpillai/hirehub_backend/websocket"
)

// SaveNotification saves a notification to the database
func SaveNotification(db *mongo.Client, employeeID int, title, message, notifType string, data interface{}) error {
	collection := config.GetCollection(db, "notifications")

	notification := models.Notification{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		Title:      title,
		Message:    message,
		Type:       notifType,
		Data:       data,
		IsRead:     false,
		CreatedAt:  time.Now(),
	}

	_, err := collection.InsertOne(context.Background(), notification)
	return err
}

// sendEmail delivers a plain-text email via the configured SMTP relay.
func sendEmail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &smtpPort)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// NotifyStatusDecision informs the requesting employee that a recruiter
// decided their request: in-app notification, WebSocket push when connected,
// and email. Delivery failures are logged and never fail the decision itself.
func NotifyStatusDecision(db *mongo.Client, hub *websocket.Hub, request models.ResourceRequest, recruiterName string) {
	var owner models.Employee
	err := config.GetCollection(db, "employees").
		FindOne(context.Background(), bson.M{"employeeId": request.EmployeeID}).
		Decode(&owner)
	if err != nil {
		log.Printf("Failed to find request owner %d: %v", request.EmployeeID, err)
		return
	}

	title := fmt.Sprintf("Request %q %s", request.RequestTitle, request.Status)
	message := fmt.Sprintf("Your resource request %q has been %s by %s.",
		request.RequestTitle, request.Status, recruiterName)
	if request.Feedback != "" {
		message += " Feedback: " + request.Feedback
	}

	if err := SaveNotification(db, owner.EmployeeID, title, message, "request_decision", map[string]interface{}{
		"resourceRequestId": request.ResourceRequestID,
		"status":            request.Status,
	}); err != nil {
		log.Printf("Failed to save decision notification: %v", err)
	}

	if hub != nil {
		_ = hub.SendToEmployee(owner.EmployeeID, websocket.Notification{
			Type:    websocket.NotificationTypeRequestDecision,
			Message: message,
			Data: map[string]interface{}{
				"resourceRequestId": request.ResourceRequestID,
				"status":            request.Status,
			},
		})
	}

	subject := fmt.Sprintf("Resource request %s: %s", request.Status, request.RequestTitle)
	body := fmt.Sprintf("Dear %s,\n\n%s\n\nRegards,\nRecruitment Team", owner.FullName(), message)
	if err := sendEmail(owner.Email, subject, body); err != nil {
		log.Printf("Failed to send decision email to %s: %v", owner.Email, err)
	}
}

// NotifyRecruitersOfNewRequest pings every recruiter about a freshly
// submitted request so it shows up in their review queue without a refresh.
func NotifyRecruitersOfNewRequest(db *mongo.Client, hub *websocket.Hub, request models.ResourceRequest, requesterName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(db, "employees").Find(ctx, bson.M{"role": "Recruiter"})
	if err != nil {
		log.Printf("Failed to list recruiters: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var recruiters []models.Employee
	if err := cursor.All(ctx, &recruiters); err != nil {
		log.Printf("Failed to decode recruiters: %v", err)
		return
	}

	title := "New resource request"
	message := fmt.Sprintf("%s submitted a new resource request: %s.", requesterName, request.RequestTitle)

	for _, r := range recruiters {
		if err := SaveNotification(db, r.EmployeeID, title, message, "request_submitted", map[string]interface{}{
			"resourceRequestId": request.ResourceRequestID,
		}); err != nil {
			log.Printf("Failed to save submission notification for %d: %v", r.EmployeeID, err)
		}
		if hub != nil {
			_ = hub.SendToEmployee(r.EmployeeID, websocket.Notification{
				Type:    websocket.NotificationTypeRequestSubmitted,
				Message: message,
				Data: map[string]interface{}{
					"resourceRequestId": request.ResourceRequestID,
				},
			})
		}
	}
}
