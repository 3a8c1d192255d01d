package api

import (
	"context"
	"fmt"

	"app/internal/domain/model"
)

type VendorsService struct {
	c *Client
}

func NewVendorsService(c *Client) *VendorsService {
	return &VendorsService{c: c}
}

type VendorInput struct {
	Name        string `json:"name"`
	Ubication   string `json:"ubication,omitempty"`
	OpeningTime string `json:"openingTime,omitempty"` // HH:mm
	ClosingTime string `json:"closingTime,omitempty"` // HH:mm
}

func (s *VendorsService) List(ctx context.Context) ([]model.Vendor, error) {
	var out []model.Vendor
	if err := s.c.get(ctx, "/vendors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VendorsService) GetByID(ctx context.Context, id int64) (model.Vendor, error) {
	var out model.Vendor
	if err := s.c.get(ctx, fmt.Sprintf("/vendors/%d", id), nil, &out); err != nil {
		return model.Vendor{}, err
	}
	return out, nil
}

func (s *VendorsService) Create(ctx context.Context, in VendorInput) (model.Vendor, error) {
	var out model.Vendor
	if err := s.c.post(ctx, "/vendors", nil, in, &out); err != nil {
		return model.Vendor{}, err
	}
	return out, nil
}

func (s *VendorsService) Update(ctx context.Context, id int64, in VendorInput) (model.Vendor, error) {
	var out model.Vendor
	if err := s.c.put(ctx, fmt.Sprintf("/vendors/%d", id), in, &out); err != nil {
		return model.Vendor{}, err
	}
	return out, nil
}

func (s *VendorsService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/vendors/%d", id), nil, nil)
}
