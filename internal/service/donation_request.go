package service

import (
	"context"
	"fmt"
	"strings"

	"pasaydan.org/backend/internal/constant"
	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/repo"
)

type DonationRequest struct {
	DonationRequestRepo *repo.DonationRequest
	Notify              *Notify
}

func NewDonationRequest(donationRequestRepo *repo.DonationRequest, notify *Notify) *DonationRequest {
	return &DonationRequest{
		DonationRequestRepo: donationRequestRepo,
		Notify:              notify,
	}
}

func (s *DonationRequest) GetDonationRequests(ctx context.Context, status string) ([]*model.DonationRequest, error) {
	return s.DonationRequestRepo.GetDonationRequests(ctx, canonicalDonationRequestStatus(status))
}

func (s *DonationRequest) GetDonationRequestById(ctx context.Context, requestId int64) (*model.DonationRequest, error) {
	return s.DonationRequestRepo.GetDonationRequestById(ctx, requestId)
}

func (s *DonationRequest) UpdateStatus(ctx context.Context, requestId int64, status string) (*model.DonationRequest, error) {
	request, err := s.DonationRequestRepo.GetDonationRequestById(ctx, requestId)
	if err != nil {
		return nil, err
	}

	request.Status = canonicalDonationRequestStatus(status)
	if err := s.DonationRequestRepo.UpdateDonationRequestStatus(ctx, requestId, request.Status); err != nil {
		return nil, err
	}

	s.Notify.Fire(fmt.Sprintf("Donation request #%d (%s) marked %s", request.DonationRequestID, request.Fullname, request.Status))

	return request, nil
}

// canonicalDonationRequestStatus maps a case-insensitive status to its stored
// title-case form. Unknown values pass through unchanged; the request
// validator has already constrained the vocabulary.
func canonicalDonationRequestStatus(status string) string {
	switch strings.ToLower(status) {
	case "pending":
		return constant.DonationRequestStatusPending
	case "approved":
		return constant.DonationRequestStatusApproved
	case "rejected":
		return constant.DonationRequestStatusRejected
	case "fulfilled":
		return constant.DonationRequestStatusFulfilled
	}
	return status
}
