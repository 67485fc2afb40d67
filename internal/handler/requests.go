package handler

import (
	"net/http"
	"strconv"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
)

// VerifyRequest is the body of the achievement and project verify endpoints.
type VerifyRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}

// UpdateApplicationStatusRequest is the body of PATCH /applications/{id}/status.
// Withdrawn is absent on purpose: withdrawing is a student action with its own
// endpoint, and pending is unreachable by definition.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=shortlisted rejected accepted"`
}

// ApplyRequest is the body of POST /applications.
type ApplyRequest struct {
	OpportunityID string `json:"opportunityId" validate:"required"`
	ResumeURL     string `json:"resumeUrl"     validate:"omitempty,url"`
	CoverLetter   string `json:"coverLetter"   validate:"max=5000"`
}

// UpdateCollegeProfileRequest is the body of PATCH /colleges/profile. The
// verified flag and the college code have no fields here: clients cannot
// self-grant verification or change their code.
type UpdateCollegeProfileRequest struct {
	Name         *string         `json:"name"         validate:"omitempty,min=2,max=200"`
	ContactEmail *string         `json:"contactEmail" validate:"omitempty,email"`
	Phone        *string         `json:"phone"        validate:"omitempty,min=7,max=20"`
	Website      *string         `json:"website"      validate:"omitempty,url"`
	Address      *AddressRequest `json:"address"      validate:"omitempty"`
}

// AddressRequest is the nested address payload of a profile update.
type AddressRequest struct {
	Street  string `json:"street"  validate:"max=200"`
	City    string `json:"city"    validate:"max=100"`
	State   string `json:"state"   validate:"max=100"`
	Pincode string `json:"pincode" validate:"omitempty,len=6,numeric"`
}

func (req *UpdateCollegeProfileRequest) toParams() repository.UpdateCollegeParams {
	params := repository.UpdateCollegeParams{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Website:      req.Website,
	}
	if req.Address != nil {
		params.Address = &model.CollegeAddress{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			Pincode: req.Address.Pincode,
		}
	}

	return params
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// paginate reads page/limit query parameters and clamps them to sane bounds.
func paginate(r *http.Request) (page, limit, skip int64) {
	page, _ = strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit, (page - 1) * limit
}
