package entities

import "time"

type SupportMaterial struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"` // pdf | image | link | archive
	URL   string `json:"url"`
}

type CourseLesson struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	CoverRef      string            `json:"cover_ref,omitempty"`
	CoverURL      string            `json:"cover_url,omitempty"`
	VideoSource   string            `json:"video_source,omitempty"` // external | local
	VideoURL      string            `json:"video_url,omitempty"`
	VideoAssetRef string            `json:"video_asset_ref,omitempty"`
	VideoAssetURL string            `json:"video_asset_url,omitempty"`
	Duration      int               `json:"duration,omitempty"` // minutos
	Materials     []SupportMaterial `json:"materials,omitempty"`
	AllowComments bool              `json:"allow_comments"`
	IsPublished   bool              `json:"is_published"`
}

type CourseModule struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	CoverRef string         `json:"cover_ref,omitempty"`
	CoverURL string         `json:"cover_url,omitempty"`
	Lessons  []CourseLesson `json:"lessons"`
	// Data para liberar o módulo aos alunos
	ReleaseDate *time.Time `json:"release_date,omitempty"`
}

// Course é a entidade independente da área de membros. Produtos apontam
// para um curso via LinkedCourseID.
type Course struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id"`
	OwnerID     string    `json:"owner_id" gorm:"column:owner_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description,omitempty" gorm:"column:description"`

	CoverRef string `json:"cover_ref,omitempty" gorm:"column:cover_ref"`
	CoverURL string `json:"cover_url,omitempty" gorm:"-"`

	WelcomeVideoSource   string `json:"welcome_video_source,omitempty" gorm:"column:welcome_video_source"`
	WelcomeVideoURL      string `json:"welcome_video_url,omitempty" gorm:"column:welcome_video_url"`
	WelcomeVideoAssetRef string `json:"welcome_video_asset_ref,omitempty" gorm:"column:welcome_video_asset_ref"`
	WelcomeVideoAssetURL string `json:"welcome_video_asset_url,omitempty" gorm:"-"`

	Modules []CourseModule `json:"modules" gorm:"column:modules;serializer:json"`
}

func (Course) TableName() string {
	return "courses"
}
