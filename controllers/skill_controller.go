package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/models"
	"github.com/ashwinpillai/hirehub_backend/utils"
)

const skillSuggestionLimit = 25

// SkillController serves the skill-suggestion source behind the skills
// autocomplete on the request form.
type SkillController struct {
	DB     *mongo.Client
	logger *log.Logger
}

// NewSkillController creates a new skill controller
func NewSkillController(db *mongo.Client) *SkillController {
	return &SkillController{
		DB:     db,
		logger: log.New(os.Stdout, "[SKILL] ", log.LstdFlags),
	}
}

// Search handles GET /api/skills?search=. An empty search returns the first
// page alphabetically so the dropdown is never empty.
func (sc *SkillController) Search(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if search := utils.SanitizeInput(c.QueryParam("search")); search != "" {
		filter["skillName"] = primitiveRegex(search)
	}

	cursor, err := config.GetCollection(sc.DB, "skills").Find(ctx, filter,
		options.Find().
			SetSort(bson.D{{Key: "skillName", Value: 1}}).
			SetLimit(skillSuggestionLimit),
	)
	if err != nil {
		sc.logger.Printf("Failed to search skills: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to search skills",
		})
	}
	defer cursor.Close(ctx)

	skills := []models.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		sc.logger.Printf("Failed to decode skills: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to search skills",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Skills retrieved successfully",
		Data:    skills,
	})
}
