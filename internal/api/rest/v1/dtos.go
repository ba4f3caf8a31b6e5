package v1

import (
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the body of successful requests without a payload
type InfoResponse struct {
	Message string `json:"message"`
}

// UploadResponse returns the stored path of an upload
type UploadResponse struct {
	Path string `json:"path"`
}

// parseDate reads a "2006-01-02" date; RFC3339 timestamps are accepted and truncated to their date
func parseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return calibration.Day(t), nil
	}
	return time.Time{}, fmt.Errorf("%s: expected YYYY-MM-DD, got %q", field, value)
}

// parseTimestamp reads an optional RFC3339 timestamp
func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: expected RFC3339, got %q", field, value)
	}
	return t, nil
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// EquipmentRequest creates or updates equipment
type EquipmentRequest struct {
	JFTNo           string  `json:"jftNo" validate:"required,min=1,max=64"`
	Description     string  `json:"description" validate:"required,min=1,max=255"`
	Brand           string  `json:"brand" validate:"max=100"`
	Model           string  `json:"model" validate:"max=100"`
	SerialNo        string  `json:"serialNo" validate:"max=100"`
	Range           string  `json:"range" validate:"max=100"`
	Location        string  `json:"location" validate:"max=100"`
	Department      string  `json:"department" validate:"max=100"`
	Frequency       string  `json:"frequency" validate:"max=32"`
	CalibrationDate string  `json:"calibrationDate" validate:"required"`
	AttachmentPath  *string `json:"attachmentPath" validate:"omitempty,min=1,max=512"`
	Remarks         string  `json:"remarks" validate:"max=1000"`
}

// Validate for validating EquipmentRequest struct
func (r *EquipmentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into an Equipment with the given ID
func (r *EquipmentRequest) ToDomain(id string) (*equipment.Equipment, error) {
	calibrationDate, err := parseDate("calibrationDate", r.CalibrationDate)
	if err != nil {
		return nil, err
	}
	return &equipment.Equipment{
		ID:              id,
		JFTNo:           r.JFTNo,
		Description:     r.Description,
		Brand:           r.Brand,
		Model:           r.Model,
		SerialNo:        r.SerialNo,
		Range:           r.Range,
		Location:        r.Location,
		Department:      r.Department,
		Frequency:       r.Frequency,
		CalibrationDate: calibrationDate,
		AttachmentPath:  r.AttachmentPath,
		Remarks:         r.Remarks,
	}, nil
}

// EquipmentResponse carries the expiry classification alongside the record
type EquipmentResponse struct {
	ID              string             `json:"id"`
	JFTNo           string             `json:"jftNo"`
	Description     string             `json:"description"`
	Brand           string             `json:"brand"`
	Model           string             `json:"model"`
	SerialNo        string             `json:"serialNo"`
	Range           string             `json:"range"`
	Location        string             `json:"location"`
	Department      string             `json:"department"`
	Frequency       string             `json:"frequency"`
	CalibrationDate string             `json:"calibrationDate"`
	NextCalibration *string            `json:"nextCalibration"`
	Status          calibration.Status `json:"status"`
	StatusLabel     string             `json:"statusLabel"`
	DaysRemaining   *int               `json:"daysRemaining"`
	AttachmentPath  *string            `json:"attachmentPath"`
	Remarks         string             `json:"remarks"`
	DateTimeCreated time.Time          `json:"dateTimeCreated"`
	DateTimeUpdated time.Time          `json:"dateTimeUpdated"`
}

// NewEquipmentResponse classifies e against today
func NewEquipmentResponse(e *equipment.Equipment, today time.Time) EquipmentResponse {
	status := e.Status(today)
	return EquipmentResponse{
		ID:              e.ID,
		JFTNo:           e.JFTNo,
		Description:     e.Description,
		Brand:           e.Brand,
		Model:           e.Model,
		SerialNo:        e.SerialNo,
		Range:           e.Range,
		Location:        e.Location,
		Department:      e.Department,
		Frequency:       e.Frequency,
		CalibrationDate: e.CalibrationDate.Format(time.DateOnly),
		NextCalibration: formatDatePtr(e.NextCalibration),
		Status:          status,
		StatusLabel:     status.Label(),
		DaysRemaining:   e.DaysRemaining(today),
		AttachmentPath:  e.AttachmentPath,
		Remarks:         e.Remarks,
		DateTimeCreated: e.DateTimeCreated,
		DateTimeUpdated: e.DateTimeUpdated,
	}
}

// ExtendRequest records a new calibration
type ExtendRequest struct {
	CalibrationDate string  `json:"calibrationDate" validate:"required"`
	Frequency       string  `json:"frequency" validate:"omitempty,max=32"`
	CertificateNo   string  `json:"certificateNo" validate:"max=100"`
	CalibratedBy    string  `json:"calibratedBy" validate:"max=100"`
	Result          string  `json:"result" validate:"omitempty,oneof=pass fail limited"`
	Remarks         string  `json:"remarks" validate:"max=1000"`
	AttachmentPath  *string `json:"attachmentPath" validate:"omitempty,min=1,max=512"`
}

// Validate for validating ExtendRequest struct
func (r *ExtendRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into an ExtensionRequest
func (r *ExtendRequest) ToDomain() (*equipment.ExtensionRequest, error) {
	calibrationDate, err := parseDate("calibrationDate", r.CalibrationDate)
	if err != nil {
		return nil, err
	}
	return &equipment.ExtensionRequest{
		CalibrationDate: calibrationDate,
		Frequency:       r.Frequency,
		CertificateNo:   r.CertificateNo,
		CalibratedBy:    r.CalibratedBy,
		Result:          r.Result,
		Remarks:         r.Remarks,
		AttachmentPath:  r.AttachmentPath,
	}, nil
}

// CardekRequest creates or updates a calibration card entry
type CardekRequest struct {
	CalibrationDate string `json:"calibrationDate" validate:"required"`
	Frequency       string `json:"frequency" validate:"omitempty,max=32"`
	CertificateNo   string `json:"certificateNo" validate:"max=100"`
	CalibratedBy    string `json:"calibratedBy" validate:"max=100"`
	Result          string `json:"result" validate:"omitempty,oneof=pass fail limited"`
	Remarks         string `json:"remarks" validate:"max=1000"`
}

// Validate for validating CardekRequest struct
func (r *CardekRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into a CardekEntry
func (r *CardekRequest) ToDomain(id, equipmentID string) (*cardek.CardekEntry, error) {
	calibrationDate, err := parseDate("calibrationDate", r.CalibrationDate)
	if err != nil {
		return nil, err
	}
	return &cardek.CardekEntry{
		ID:              id,
		EquipmentID:     equipmentID,
		CalibrationDate: calibrationDate,
		Frequency:       r.Frequency,
		CertificateNo:   r.CertificateNo,
		CalibratedBy:    r.CalibratedBy,
		Result:          r.Result,
		Remarks:         r.Remarks,
	}, nil
}

// CardekResponse is one calibration card entry
type CardekResponse struct {
	ID              string    `json:"id"`
	EquipmentID     string    `json:"equipmentId"`
	JFTNo           string    `json:"jftNo"`
	CalibrationDate string    `json:"calibrationDate"`
	NextCalibration *string   `json:"nextCalibration"`
	Frequency       string    `json:"frequency"`
	CertificateNo   string    `json:"certificateNo"`
	CalibratedBy    string    `json:"calibratedBy"`
	Result          string    `json:"result"`
	Remarks         string    `json:"remarks"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// NewCardekResponse converts a CardekEntry
func NewCardekResponse(entry *cardek.CardekEntry) CardekResponse {
	return CardekResponse{
		ID:              entry.ID,
		EquipmentID:     entry.EquipmentID,
		JFTNo:           entry.JFTNo,
		CalibrationDate: entry.CalibrationDate.Format(time.DateOnly),
		NextCalibration: formatDatePtr(entry.NextCalibration),
		Frequency:       entry.Frequency,
		CertificateNo:   entry.CertificateNo,
		CalibratedBy:    entry.CalibratedBy,
		Result:          entry.Result,
		Remarks:         entry.Remarks,
		DateTimeCreated: entry.DateTimeCreated,
	}
}

// IssueInstrumentRequest loans out an instrument
type IssueInstrumentRequest struct {
	JFTNo           string  `json:"jftNo" validate:"required,min=1,max=64"`
	Borrower        string  `json:"borrower" validate:"required,min=1,max=100"`
	Department      string  `json:"department" validate:"max=100"`
	Purpose         string  `json:"purpose" validate:"max=255"`
	IssuedAt        string  `json:"issuedAt"`
	IssuedImagePath *string `json:"issuedImagePath" validate:"omitempty,min=1,max=512"`
}

// Validate for validating IssueInstrumentRequest struct
func (r *IssueInstrumentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into an IssueRequest
func (r *IssueInstrumentRequest) ToDomain() (*instruments.IssueRequest, error) {
	issuedAt, err := parseTimestamp("issuedAt", r.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &instruments.IssueRequest{
		JFTNo:           r.JFTNo,
		Borrower:        r.Borrower,
		Department:      r.Department,
		Purpose:         r.Purpose,
		IssuedAt:        issuedAt,
		IssuedImagePath: r.IssuedImagePath,
	}, nil
}

// ReturnInstrumentRequest closes a loan
type ReturnInstrumentRequest struct {
	ReturnedAt      string  `json:"returnedAt"`
	ReturnImagePath *string `json:"returnImagePath" validate:"omitempty,min=1,max=512"`
	ReturnCondition string  `json:"returnCondition" validate:"max=255"`
}

// Validate for validating ReturnInstrumentRequest struct
func (r *ReturnInstrumentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into a ReturnRequest
func (r *ReturnInstrumentRequest) ToDomain() (*instruments.ReturnRequest, error) {
	returnedAt, err := parseTimestamp("returnedAt", r.ReturnedAt)
	if err != nil {
		return nil, err
	}
	return &instruments.ReturnRequest{
		ReturnedAt:      returnedAt,
		ReturnImagePath: r.ReturnImagePath,
		ReturnCondition: r.ReturnCondition,
	}, nil
}

// InstrumentLoanResponse is one issue/return cycle
type InstrumentLoanResponse struct {
	ID              string     `json:"id"`
	EquipmentID     string     `json:"equipmentId"`
	JFTNo           string     `json:"jftNo"`
	Borrower        string     `json:"borrower"`
	Department      string     `json:"department"`
	Purpose         string     `json:"purpose"`
	IssuedAt        time.Time  `json:"issuedAt"`
	IssuedImagePath *string    `json:"issuedImagePath"`
	ReturnedAt      *time.Time `json:"returnedAt"`
	ReturnImagePath *string    `json:"returnImagePath"`
	ReturnCondition string     `json:"returnCondition"`
	Status          string     `json:"status"`
}

// NewInstrumentLoanResponse converts an InstrumentLoan
func NewInstrumentLoanResponse(l *instruments.InstrumentLoan) InstrumentLoanResponse {
	return InstrumentLoanResponse{
		ID:              l.ID,
		EquipmentID:     l.EquipmentID,
		JFTNo:           l.JFTNo,
		Borrower:        l.Borrower,
		Department:      l.Department,
		Purpose:         l.Purpose,
		IssuedAt:        l.IssuedAt,
		IssuedImagePath: l.IssuedImagePath,
		ReturnedAt:      l.ReturnedAt,
		ReturnImagePath: l.ReturnImagePath,
		ReturnCondition: l.ReturnCondition,
		Status:          l.Status,
	}
}

// NCRRequest creates or updates a non-conformance report
type NCRRequest struct {
	NCRNo            string `json:"ncrNo" validate:"required,min=1,max=64"`
	Date             string `json:"date" validate:"required"`
	Source           string `json:"source" validate:"required,oneof=internal supplier customer process"`
	Department       string `json:"department" validate:"max=100"`
	PartNo           string `json:"partNo" validate:"max=100"`
	PartName         string `json:"partName" validate:"max=255"`
	Description      string `json:"description" validate:"required,min=1,max=2000"`
	Quantity         int    `json:"quantity" validate:"min=0"`
	Disposition      string `json:"disposition" validate:"omitempty,oneof=repair rework scrap use_as_is return_to_vendor"`
	RootCause        string `json:"rootCause" validate:"max=2000"`
	CorrectiveAction string `json:"correctiveAction" validate:"max=2000"`
	RaisedBy         string `json:"raisedBy" validate:"max=100"`
}

// Validate for validating NCRRequest struct
func (r *NCRRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ToDomain converts the request into an NCR with the given ID
func (r *NCRRequest) ToDomain(id string) (*ncr.NCR, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return nil, err
	}
	return &ncr.NCR{
		ID:               id,
		NCRNo:            r.NCRNo,
		Date:             date,
		Source:           r.Source,
		Department:       r.Department,
		PartNo:           r.PartNo,
		PartName:         r.PartName,
		Description:      r.Description,
		Quantity:         r.Quantity,
		Disposition:      r.Disposition,
		RootCause:        r.RootCause,
		CorrectiveAction: r.CorrectiveAction,
		RaisedBy:         r.RaisedBy,
	}, nil
}

// CloseNCRRequest closes an NCR with an optional final disposition
type CloseNCRRequest struct {
	Disposition string `json:"disposition" validate:"omitempty,oneof=repair rework scrap use_as_is return_to_vendor"`
}

// Validate for validating CloseNCRRequest struct
func (r *CloseNCRRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// NCRResponse is one non-conformance report
type NCRResponse struct {
	ID               string     `json:"id"`
	NCRNo            string     `json:"ncrNo"`
	Date             string     `json:"date"`
	Source           string     `json:"source"`
	Department       string     `json:"department"`
	PartNo           string     `json:"partNo"`
	PartName         string     `json:"partName"`
	Description      string     `json:"description"`
	Quantity         int        `json:"quantity"`
	Disposition      string     `json:"disposition"`
	RootCause        string     `json:"rootCause"`
	CorrectiveAction string     `json:"correctiveAction"`
	RaisedBy         string     `json:"raisedBy"`
	Status           string     `json:"status"`
	ClosedAt         *time.Time `json:"closedAt"`
	DateTimeCreated  time.Time  `json:"dateTimeCreated"`
	DateTimeUpdated  time.Time  `json:"dateTimeUpdated"`
}

// NewNCRResponse converts an NCR
func NewNCRResponse(n *ncr.NCR) NCRResponse {
	return NCRResponse{
		ID:               n.ID,
		NCRNo:            n.NCRNo,
		Date:             n.Date.Format(time.DateOnly),
		Source:           n.Source,
		Department:       n.Department,
		PartNo:           n.PartNo,
		PartName:         n.PartName,
		Description:      n.Description,
		Quantity:         n.Quantity,
		Disposition:      n.Disposition,
		RootCause:        n.RootCause,
		CorrectiveAction: n.CorrectiveAction,
		RaisedBy:         n.RaisedBy,
		Status:           n.Status,
		ClosedAt:         n.ClosedAt,
		DateTimeCreated:  n.DateTimeCreated,
		DateTimeUpdated:  n.DateTimeUpdated,
	}
}

// NCRReportResponse is the JSON rendering of an NCR report
type NCRReportResponse struct {
	Period        string         `json:"period"`
	Total         int            `json:"total"`
	ByDisposition map[string]int `json:"byDisposition"`
	BySource      map[string]int `json:"bySource"`
	Rows          []NCRResponse  `json:"rows"`
}

// LoanReportResponse is the JSON rendering of an instrument loan report
type LoanReportResponse struct {
	Period   string                   `json:"period"`
	Total    int                      `json:"total"`
	Open     int                      `json:"open"`
	Returned int                      `json:"returned"`
	Rows     []InstrumentLoanResponse `json:"rows"`
}

// LoginRequest carries user credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// LoginResponse returns a bearer token
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest creates an account
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
	FullName string `json:"fullName" validate:"max=255"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Role     string `json:"role" validate:"required,oneof=admin operator viewer"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UpdateUserRequest changes account fields; absent fields are kept
type UpdateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin operator viewer"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Active   *bool   `json:"active"`
}

// Validate for validating UpdateUserRequest struct
func (r *UpdateUserRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UserResponse never exposes the password hash
type UserResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	ProfileImagePath *string   `json:"profileImagePath"`
	Active           bool      `json:"active"`
	DateTimeCreated  time.Time `json:"dateTimeCreated"`
}

// NewUserResponse converts a User
func NewUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		FullName:         u.FullName,
		Email:            u.Email,
		Role:             u.Role,
		ProfileImagePath: u.ProfileImagePath,
		Active:           u.Active,
		DateTimeCreated:  u.DateTimeCreated,
	}
}

// ProfileImageRequest sets the path of an uploaded profile picture
type ProfileImageRequest struct {
	Path string `json:"path" validate:"required,min=1,max=512"`
}

// Validate for validating ProfileImageRequest struct
func (r *ProfileImageRequest) Validate() error {
	return validators.ValidateStruct(r)
}
