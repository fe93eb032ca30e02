package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"
	"exec-workspace-be/internal/repository/unitofwork"
	"exec-workspace-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a fresh database with a believable executive workspace: a few
// priorities, projects and people, pinned meeting notes, open action
// items and a starter tag palette. Skips entirely if objects exist.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	workspace, err := uow.WorkspaceRepository().FindOne(ctx)
	if err != nil {
		log.Fatalf("Error: Failed to query workspace: %v", err)
	}
	if workspace == nil {
		workspace = &entity.Workspace{
			Id:        uuid.New(),
			Name:      "My Workspace",
			CreatedAt: time.Now(),
		}
		if err := uow.WorkspaceRepository().Create(ctx, workspace); err != nil {
			log.Fatalf("Error: Failed to create workspace: %v", err)
		}
	}

	count, err := uow.ExecObjectRepository().Count(ctx, specification.ByWorkspaceID{WorkspaceID: workspace.Id})
	if err != nil {
		log.Fatalf("Error: Failed to count objects: %v", err)
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return
	}

	log.Println("Seeding database with sample data...")

	newObject := func(objectType, title, description, status string) *entity.ExecObject {
		now := time.Now()
		object := &entity.ExecObject{
			Id:          uuid.New(),
			WorkspaceId: workspace.Id,
			ObjectType:  objectType,
			Title:       title,
			Description: &description,
			Status:      &status,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uow.ExecObjectRepository().Create(ctx, object); err != nil {
			log.Fatalf("Error: Failed to create object %q: %v", title, err)
		}
		return object
	}

	priority1 := newObject("priority", "Q1 Revenue Growth",
		"Focus on increasing monthly recurring revenue by 25% through product improvements and customer success initiatives.", "active")
	priority2 := newObject("priority", "Team Expansion",
		"Hire 3 senior engineers and 2 product designers by end of quarter.", "active")
	project1 := newObject("project", "Mobile App Launch",
		"Complete development and launch of iOS and Android mobile applications with feature parity to web.", "active")
	project2 := newObject("project", "API v2 Migration",
		"Migrate all customers from API v1 to v2 with improved rate limits and new endpoints.", "active")
	newObject("project", "Customer Dashboard Redesign",
		"Redesign the analytics dashboard with new visualizations and export capabilities.", "on_hold")
	person1 := newObject("person", "Sarah Chen",
		"VP of Engineering. Key stakeholder for technical decisions and team growth.", "active")
	newObject("person", "Marcus Williams",
		"Head of Product. Owns roadmap and feature prioritization.", "active")
	newObject("person", "Elena Rodriguez",
		"Customer Success Lead. Primary contact for enterprise accounts.", "active")

	newNote := func(objectId uuid.UUID, title, noteKind string, pinned bool, content string) {
		now := time.Now()
		note := &entity.Note{
			Id:          uuid.New(),
			WorkspaceId: workspace.Id,
			ObjectId:    &objectId,
			Title:       title,
			Content:     json.RawMessage(content),
			NoteKind:    noteKind,
			Pinned:      pinned,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uow.NoteRepository().Create(ctx, note); err != nil {
			log.Fatalf("Error: Failed to create note %q: %v", title, err)
		}
	}

	newNote(project1.Id, "Mobile App Architecture Discussion", "meeting", true,
		docContent("Architecture Overview",
			"Discussed the mobile app architecture with the team. Key decisions:",
			"React Native for cross-platform development",
			"Redux Toolkit for state management",
			"REST API with GraphQL for complex queries"))
	newNote(priority1.Id, "Weekly Revenue Review", "weekly", false,
		docContent("Week 3 Review",
			"Current MRR: $245,000 (up 8% from last month)",
			"Closed enterprise deal with TechCorp ($15k/mo)",
			"Reduced churn by 2% through proactive outreach"))
	newNote(person1.Id, "1:1 with Sarah - Engineering Updates", "meeting", false,
		docContent("Discussion Points",
			"Follow up next week on hiring decisions.",
			"Team morale is high after successful launch",
			"Need to prioritize tech debt in Q2",
			"Hiring pipeline looks strong - 3 candidates in final round"))

	newActionItem := func(title, status string, relatedObjectId uuid.UUID, dueInDays int) {
		now := time.Now()
		item := &entity.ActionItem{
			Id:              uuid.New(),
			WorkspaceId:     workspace.Id,
			Title:           title,
			Status:          status,
			RelatedObjectId: &relatedObjectId,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if dueInDays > 0 {
			due := now.AddDate(0, 0, dueInDays)
			item.DueDate = &due
		}
		if err := uow.ActionItemRepository().Create(ctx, item); err != nil {
			log.Fatalf("Error: Failed to create action item %q: %v", title, err)
		}
	}

	newActionItem("Review mobile app wireframes", "todo", project1.Id, 2)
	newActionItem("Finalize API v2 migration plan", "doing", project2.Id, 5)
	newActionItem("Schedule engineering team retro", "todo", person1.Id, 0)
	newActionItem("Prepare Q1 revenue presentation", "doing", priority1.Id, 7)
	newActionItem("Interview senior engineer candidate", "todo", priority2.Id, 3)

	newTag := func(name, color string) {
		tag := &entity.Tag{
			Id:          uuid.New(),
			WorkspaceId: workspace.Id,
			Name:        name,
			Color:       color,
			CreatedAt:   time.Now(),
		}
		if err := uow.TagRepository().Create(ctx, tag); err != nil {
			log.Fatalf("Error: Failed to create tag %q: %v", name, err)
		}
	}

	newTag("urgent", "#ef4444")
	newTag("technical", "#3b82f6")
	newTag("growth", "#22c55e")
	newTag("hiring", "#a855f7")
	newTag("strategy", "#f59e0b")

	log.Println("Database seeded successfully")
}

// docContent builds a minimal rich-text document: a heading, a lead
// paragraph and a bullet list.
func docContent(heading, lead string, bullets ...string) string {
	type node map[string]interface{}

	text := func(s string) node { return node{"type": "text", "text": s} }
	paragraph := func(s string) node {
		return node{"type": "paragraph", "content": []node{text(s)}}
	}

	items := make([]node, len(bullets))
	for i, b := range bullets {
		items[i] = node{"type": "listItem", "content": []node{paragraph(b)}}
	}

	doc := node{
		"type": "doc",
		"content": []node{
			{"type": "heading", "attrs": node{"level": 1}, "content": []node{text(heading)}},
			paragraph(lead),
			{"type": "bulletList", "content": items},
		},
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("Error: Failed to marshal note content: %v", err)
	}
	return string(raw)
}
