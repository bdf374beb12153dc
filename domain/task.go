package domain

// Task represents a single to-do item on the list.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Done      bool     `json:"done"`
	CreatedAt int64    `json:"createdAt"`
	Priority  Priority `json:"priority"`
}
