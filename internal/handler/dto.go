package handler

import "github.com/zotoio/halt.sh/internal/archive"

type PaginationResponse struct {
	HasNext bool `json:"has_next"`
}

type ArchiveResponse struct {
	Editorials []archive.Entry    `json:"editorials"`
	Pagination PaginationResponse `json:"pagination"`
}
