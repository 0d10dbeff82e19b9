package dto

// CreateCertificateRequest is bound from the multipart form that accompanies
// the certificate file upload.
type CreateCertificateRequest struct {
	Name                string `form:"name" validate:"required,max=200"`
	IssuingOrganization string `form:"issuing_organization" validate:"max=200"`
	IssueDate           string `form:"issue_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate          string `form:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}
