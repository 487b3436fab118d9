package models

type Comment struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Text     string `json:"text" gorm:"not null"`
	AuthorID uint   `json:"author_id" gorm:"not null"`
	Author   User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	PostID   uint   `json:"post_id" gorm:"not null"`
	Post     Post   `json:"post,omitempty" gorm:"foreignKey:PostID"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentRequest struct {
	Text string `form:"comment" binding:"required,max=300"`
}
