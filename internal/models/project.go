package models

import "time"

// Project is a portfolio entry. Collection: "project".
type Project struct {
	Title       string    `bson:"title" json:"title" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	TechStack   []string  `bson:"tech_stack" json:"tech_stack"`
	URL         string    `bson:"url,omitempty" json:"url,omitempty" binding:"omitempty,url"`
	RepoURL     string    `bson:"repo_url,omitempty" json:"repo_url,omitempty" binding:"omitempty,url"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty" binding:"omitempty,url"`
	Featured    bool      `bson:"featured" json:"featured"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (p *Project) Normalize() {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
}
