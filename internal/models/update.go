package models

import "go.mongodb.org/mongo-driver/bson"

// CvUpdate carries a partial CV payload: only non-nil fields are written,
// everything else is left untouched in storage.
type CvUpdate struct {
	Name       *string           `json:"name"`
	Title      *string           `json:"title"`
	Summary    *string           `json:"summary"`
	Location   *string           `json:"location"`
	Email      *string           `json:"email" binding:"omitempty,email"`
	Phone      *string           `json:"phone"`
	Skills     *[]string         `json:"skills"`
	Experience *[]ExperienceItem `json:"experience" binding:"omitempty,dive"`
	Education  *[]EducationItem  `json:"education" binding:"omitempty,dive"`
	Website    *string           `json:"website" binding:"omitempty,url"`
	AvatarURL  *string           `json:"avatar_url" binding:"omitempty,url"`
}

// Fields returns the $set document for the supplied fields.
func (u *CvUpdate) Fields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Summary != nil {
		set["summary"] = *u.Summary
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Skills != nil {
		set["skills"] = *u.Skills
	}
	if u.Experience != nil {
		set["experience"] = *u.Experience
	}
	if u.Education != nil {
		set["education"] = *u.Education
	}
	if u.Website != nil {
		set["website"] = *u.Website
	}
	if u.AvatarURL != nil {
		set["avatar_url"] = *u.AvatarURL
	}
	return set
}

// ProjectUpdate carries a partial Project payload.
type ProjectUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	TechStack   *[]string `json:"tech_stack"`
	URL         *string   `json:"url" binding:"omitempty,url"`
	RepoURL     *string   `json:"repo_url" binding:"omitempty,url"`
	ImageURL    *string   `json:"image_url" binding:"omitempty,url"`
	Featured    *bool     `json:"featured"`
}

func (u *ProjectUpdate) Fields() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.TechStack != nil {
		set["tech_stack"] = *u.TechStack
	}
	if u.URL != nil {
		set["url"] = *u.URL
	}
	if u.RepoURL != nil {
		set["repo_url"] = *u.RepoURL
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	if u.Featured != nil {
		set["featured"] = *u.Featured
	}
	return set
}
