package models

import "time"

type ExperienceItem struct {
	Role        string `bson:"role" json:"role" binding:"required"`
	Company     string `bson:"company" json:"company" binding:"required"`
	StartDate   string `bson:"start_date" json:"start_date" binding:"required"`
	EndDate     string `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type EducationItem struct {
	School    string `bson:"school" json:"school" binding:"required"`
	Degree    string `bson:"degree" json:"degree" binding:"required"`
	StartYear string `bson:"start_year,omitempty" json:"start_year,omitempty"`
	EndYear   string `bson:"end_year,omitempty" json:"end_year,omitempty"`
}

// Cv is the single-person profile document. Collection: "cv".
type Cv struct {
	Name       string           `bson:"name" json:"name" binding:"required"`
	Title      string           `bson:"title" json:"title" binding:"required"`
	Summary    string           `bson:"summary,omitempty" json:"summary,omitempty"`
	Location   string           `bson:"location,omitempty" json:"location,omitempty"`
	Email      string           `bson:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
	Phone      string           `bson:"phone,omitempty" json:"phone,omitempty"`
	Skills     []string         `bson:"skills" json:"skills"`
	Experience []ExperienceItem `bson:"experience" json:"experience" binding:"omitempty,dive"`
	Education  []EducationItem  `bson:"education" json:"education" binding:"omitempty,dive"`
	Website    string           `bson:"website,omitempty" json:"website,omitempty" binding:"omitempty,url"`
	AvatarURL  string           `bson:"avatar_url,omitempty" json:"avatar_url,omitempty" binding:"omitempty,url"`
	CreatedAt  time.Time        `bson:"created_at" json:"created_at"`
}

// Normalize fills nil list fields with empty slices so stored documents
// render as [] instead of null.
func (cv *Cv) Normalize() {
	if cv.Skills == nil {
		cv.Skills = []string{}
	}
	if cv.Experience == nil {
		cv.Experience = []ExperienceItem{}
	}
	if cv.Education == nil {
		cv.Education = []EducationItem{}
	}
}
