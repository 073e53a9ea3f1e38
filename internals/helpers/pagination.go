// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1
)

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = Options{DefaultPerPage: 10, MaxPerPage: 100}
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging membaca ?page= & ?limit= (atau alias ?per_page=) dan normalisasi.
// page 1-indexed; nilai invalid jatuh ke default.
func ResolvePaging(c *fiber.Ctx, opt Options) Paging {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	limit := atoiDefault(strings.TrimSpace(firstNonEmpty(c.Query("limit"), c.Query("per_page"))), opt.DefaultPerPage)
	return NewPaging(page, limit, opt)
}

func NewPaging(page, limit int, opt Options) Paging {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = opt.DefaultPerPage
	}
	if opt.MaxPerPage > 0 && limit > opt.MaxPerPage {
		limit = opt.MaxPerPage
	}
	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// Pagination untuk response list
type Pagination struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func BuildPagination(total int64, p Paging) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit)) // ceil
	}
	return Pagination{
		Total:   total,
		Page:    p.Page,
		Limit:   p.Limit,
		Pages:   pages,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}
