package blog

import (
	"encoding/json"
	"strings"
)

type CreateBlogRequest struct {
	TitleEn    string `form:"title_en" validate:"required"`
	TitleAr    string `form:"title_ar"`
	ContentEn  string `form:"content_en" validate:"required"`
	ContentAr  string `form:"content_ar"`
	ExcerptEn  string `form:"excerpt_en"`
	ExcerptAr  string `form:"excerpt_ar"`
	Published  bool   `form:"published"`
	Categories string `form:"categories"`
	Tags       string `form:"tags"`
}

type UpdateBlogRequest struct {
	TitleEn    *string `form:"title_en"`
	TitleAr    *string `form:"title_ar"`
	ContentEn  *string `form:"content_en"`
	ContentAr  *string `form:"content_ar"`
	ExcerptEn  *string `form:"excerpt_en"`
	ExcerptAr  *string `form:"excerpt_ar"`
	Published  *bool   `form:"published"`
	Categories *string `form:"categories"`
	Tags       *string `form:"tags"`
}

type ListQuery struct {
	Published *bool  `form:"published"`
	Category  string `form:"category"`
	Tag       string `form:"tag"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

// parseList accepts the two shapes the frontend sends for categories and
// tags: a JSON array string or a comma-separated list.
func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if strings.HasPrefix(raw, "[") {
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items
		}
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
