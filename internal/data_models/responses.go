package dto

import (
	"time"

	"todo-hub.com/todo-hub/internal/constants"
	model "todo-hub.com/todo-hub/internal/models"
)

// TodoResponse decorates a todo with its derived fields.
type TodoResponse struct {
	model.Todo
	DueStatus        constants.DueStatus `json:"due_status,omitempty"`
	TimeSpentDisplay string              `json:"time_spent_display"`
}

func NewTodoResponse(todo model.Todo, now time.Time) TodoResponse {
	return TodoResponse{
		Todo:             todo,
		DueStatus:        todo.DueStatus(now),
		TimeSpentDisplay: todo.TimeSpentDisplay(),
	}
}

func NewTodoResponses(todos []model.Todo, now time.Time) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, NewTodoResponse(todo, now))
	}
	return out
}

// TodoDetailResponse is the join-fetch shape: the todo plus decorated
// attachments and the checklist completion stats.
type TodoDetailResponse struct {
	TodoResponse
	Attachments       []AttachmentResponse  `json:"attachments"`
	SubtaskCompletion model.CompletionStats `json:"subtask_completion"`
}

func NewTodoDetailResponse(todo model.Todo, now time.Time) TodoDetailResponse {
	return TodoDetailResponse{
		TodoResponse:      NewTodoResponse(todo, now),
		Attachments:       NewAttachmentResponses(todo.Attachments),
		SubtaskCompletion: model.Completion(todo.Subtasks),
	}
}

type AttachmentResponse struct {
	model.Attachment
	SizeDisplay string `json:"size_display"`
	Icon        string `json:"icon"`
}

func NewAttachmentResponse(attachment model.Attachment) AttachmentResponse {
	return AttachmentResponse{
		Attachment:  attachment,
		SizeDisplay: attachment.SizeDisplay(),
		Icon:        attachment.Icon(),
	}
}

func NewAttachmentResponses(attachments []model.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(attachments))
	for _, attachment := range attachments {
		out = append(out, NewAttachmentResponse(attachment))
	}
	return out
}

type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}
