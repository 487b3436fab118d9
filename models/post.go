package models

type Post struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	AuthorID uint      `json:"author_id" gorm:"not null"`
	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Title    string    `json:"title" gorm:"uniqueIndex;not null"`
	Subtitle string    `json:"subtitle" gorm:"not null"`
	Date     string    `json:"date" gorm:"not null"`
	Body     string    `json:"body" gorm:"type:text;not null"`
	ImgURL   string    `json:"img_url" gorm:"not null"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

func (Post) TableName() string {
	return "blog_posts"
}

// DateLayout is the display format stamped on new posts, e.g. "August 31, 2026".
const DateLayout = "January 2, 2006"

type PostRequest struct {
	Title    string `form:"title" binding:"required,max=250"`
	Subtitle string `form:"subtitle" binding:"required,max=250"`
	ImgURL   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}
