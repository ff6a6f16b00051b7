package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"labelchecker/pkg/domain"
	"time"

	"github.com/google/uuid"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgAccount struct {
	ID   uuid.UUID `db:"id"   goqu:"skipinsert"`
	Name string    `db:"name"`
	Plan string    `db:"plan"`

	ScansUsed    int       `db:"scans_used"`
	ScanLimit    int       `db:"scan_limit"`
	BonusCredits int       `db:"bonus_credits"`
	PeriodStart  time.Time `db:"period_start" goqu:"skipinsert"`

	StripeCustomerID     sql.NullString `db:"stripe_customer_id"`
	StripeSubscriptionID sql.NullString `db:"stripe_subscription_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:                   domain.AccountID(p.ID),
		Name:                 p.Name,
		Plan:                 domain.Plan(p.Plan),
		ScansUsed:            p.ScansUsed,
		ScanLimit:            p.ScanLimit,
		BonusCredits:         p.BonusCredits,
		PeriodStart:          p.PeriodStart,
		StripeCustomerID:     p.StripeCustomerID.String,
		StripeSubscriptionID: p.StripeSubscriptionID.String,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}
}

func (p *PgAccount) FromDomain(a domain.Account) {
	*p = PgAccount{
		ID:                   uuid.UUID(a.ID),
		Name:                 a.Name,
		Plan:                 string(a.Plan),
		ScansUsed:            a.ScansUsed,
		ScanLimit:            a.ScanLimit,
		BonusCredits:         a.BonusCredits,
		PeriodStart:          a.PeriodStart,
		StripeCustomerID:     nullString(a.StripeCustomerID),
		StripeSubscriptionID: nullString(a.StripeSubscriptionID),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            nullTime(a.UpdatedAt),
	}
}

type PgUser struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	AccountID    uuid.UUID `db:"account_id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	AccountRole  string    `db:"account_role"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		AccountID:    domain.AccountID(p.AccountID),
		Email:        p.Email,
		Name:         p.Name,
		PasswordHash: p.PasswordHash,
		Role:         domain.Role(p.Role),
		AccountRole:  domain.AccountRole(p.AccountRole),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(u.ID),
		AccountID:    uuid.UUID(u.AccountID),
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		AccountRole:  string(u.AccountRole),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    nullTime(u.UpdatedAt),
	}
}

// PgScan mirrors the scans table. JSONB columns are carried as text so goqu
// renders them as plain string literals.
type PgScan struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	AccountID uuid.UUID `db:"account_id"`
	UserID    uuid.UUID `db:"user_id"`

	ProductName      string         `db:"product_name"`
	ImageKey         string         `db:"image_key"`
	ImageContentType string         `db:"image_content_type"`
	Marketplaces     string         `db:"marketplaces"`
	Status           string         `db:"status"`
	Progress         int            `db:"progress"`
	Result           sql.NullString `db:"result"     goqu:"skipinsert"`
	CreditSource     string         `db:"credit_source"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgScan) ToDomain() (*domain.Scan, error) {
	var marketplaces []domain.Marketplace
	if p.Marketplaces != "" {
		if err := json.Unmarshal([]byte(p.Marketplaces), &marketplaces); err != nil {
			return nil, fmt.Errorf("could not unmarshal scan marketplaces: %w", err)
		}
	}

	var result *domain.ComplianceReport
	if p.Result.Valid && p.Result.String != "" && p.Result.String != "null" {
		result = &domain.ComplianceReport{}
		if err := json.Unmarshal([]byte(p.Result.String), result); err != nil {
			return nil, fmt.Errorf("could not unmarshal scan result: %w", err)
		}
	}

	return &domain.Scan{
		ID:               domain.ScanID(p.ID),
		AccountID:        domain.AccountID(p.AccountID),
		UserID:           domain.UserID(p.UserID),
		ProductName:      p.ProductName,
		ImageKey:         p.ImageKey,
		ImageContentType: p.ImageContentType,
		Marketplaces:     marketplaces,
		Status:           domain.ScanStatus(p.Status),
		Progress:         p.Progress,
		Result:           result,
		CreditSource:     domain.CreditSource(p.CreditSource),
		Attempts:         p.Attempts,
		LastError:        p.LastError.String,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}, nil
}

func (p *PgScan) FromDomain(scan domain.Scan) error {
	marketplaces := scan.Marketplaces
	if marketplaces == nil {
		marketplaces = []domain.Marketplace{}
	}
	mb, err := json.Marshal(marketplaces)
	if err != nil {
		return fmt.Errorf("could not marshal scan marketplaces: %w", err)
	}

	var result sql.NullString
	if scan.Result != nil {
		rb, err := json.Marshal(scan.Result)
		if err != nil {
			return fmt.Errorf("could not marshal scan result: %w", err)
		}
		result = sql.NullString{String: string(rb), Valid: true}
	}

	source := scan.CreditSource
	if source == "" {
		source = domain.CreditSourceBonus
	}

	*p = PgScan{
		ID:               uuid.UUID(scan.ID),
		AccountID:        uuid.UUID(scan.AccountID),
		UserID:           uuid.UUID(scan.UserID),
		ProductName:      scan.ProductName,
		ImageKey:         scan.ImageKey,
		ImageContentType: scan.ImageContentType,
		Marketplaces:     string(mb),
		Status:           string(scan.Status),
		Progress:         scan.Progress,
		Result:           result,
		CreditSource:     string(source),
		Attempts:         scan.Attempts,
		LastError:        nullString(scan.LastError),
		CreatedAt:        scan.CreatedAt,
		UpdatedAt:        nullTime(scan.UpdatedAt),
		DeletedAt:        nullTime(scan.DeletedAt),
	}

	return nil
}

func domainScansToPg(scans []domain.Scan) ([]PgScan, error) {
	out := make([]PgScan, len(scans))
	for i := range out {
		if err := out[i].FromDomain(scans[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgScansToDomain(scans []PgScan) ([]domain.Scan, error) {
	out := make([]domain.Scan, 0, len(scans))
	for _, scan := range scans {
		d, err := scan.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgPayment struct {
	ID              uuid.UUID      `db:"id"                goqu:"skipinsert"`
	AccountID       uuid.UUID      `db:"account_id"`
	Plan            string         `db:"plan"`
	StripeSessionID sql.NullString `db:"stripe_session_id"`
	StripeInvoiceID sql.NullString `db:"stripe_invoice_id"`
	Amount          int64          `db:"amount"`
	Currency        string         `db:"currency"`
	Status          string         `db:"status"`
	CreatedAt       time.Time      `db:"created_at"        goqu:"skipinsert"`
}

func (p *PgPayment) ToDomain() domain.Payment {
	return domain.Payment{
		ID:              domain.PaymentID(p.ID),
		AccountID:       domain.AccountID(p.AccountID),
		Plan:            domain.Plan(p.Plan),
		StripeSessionID: p.StripeSessionID.String,
		StripeInvoiceID: p.StripeInvoiceID.String,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          domain.PaymentStatus(p.Status),
		CreatedAt:       p.CreatedAt,
	}
}

func (p *PgPayment) FromDomain(pm domain.Payment) {
	status := pm.Status
	if status == "" {
		status = domain.PaymentStatusSucceeded
	}

	*p = PgPayment{
		ID:              uuid.UUID(pm.ID),
		AccountID:       uuid.UUID(pm.AccountID),
		Plan:            string(pm.Plan),
		StripeSessionID: nullString(pm.StripeSessionID),
		StripeInvoiceID: nullString(pm.StripeInvoiceID),
		Amount:          pm.Amount,
		Currency:        pm.Currency,
		Status:          string(status),
		CreatedAt:       pm.CreatedAt,
	}
}

type PgInvite struct {
	ID        uuid.UUID    `db:"id"         goqu:"skipinsert"`
	AccountID uuid.UUID    `db:"account_id"`
	Email     string       `db:"email"`
	Token     string       `db:"token"`
	InvitedBy uuid.UUID    `db:"invited_by"`
	Status    string       `db:"status"`
	ExpiresAt time.Time    `db:"expires_at"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgInvite) ToDomain() *domain.AccountInvite {
	return &domain.AccountInvite{
		ID:        domain.InviteID(p.ID),
		AccountID: domain.AccountID(p.AccountID),
		Email:     p.Email,
		Token:     p.Token,
		InvitedBy: domain.UserID(p.InvitedBy),
		Status:    domain.InviteStatus(p.Status),
		ExpiresAt: p.ExpiresAt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgInvite) FromDomain(i domain.AccountInvite) {
	*p = PgInvite{
		ID:        uuid.UUID(i.ID),
		AccountID: uuid.UUID(i.AccountID),
		Email:     i.Email,
		Token:     i.Token,
		InvitedBy: uuid.UUID(i.InvitedBy),
		Status:    string(i.Status),
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
		UpdatedAt: nullTime(i.UpdatedAt),
	}
}

type PgRule struct {
	ID          uuid.UUID    `db:"id"          goqu:"skipinsert"`
	Code        string       `db:"code"`
	Authority   string       `db:"authority"`
	Marketplace string       `db:"marketplace"`
	Category    string       `db:"category"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Severity    string       `db:"severity"`
	Active      bool         `db:"active"`
	CreatedAt   time.Time    `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgRule) ToDomain() domain.RegulatoryRule {
	return domain.RegulatoryRule{
		ID:          domain.RuleID(p.ID),
		Code:        p.Code,
		Authority:   domain.Authority(p.Authority),
		Marketplace: domain.Marketplace(p.Marketplace),
		Category:    p.Category,
		Title:       p.Title,
		Description: p.Description,
		Severity:    domain.Severity(p.Severity),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgRule) FromDomain(r domain.RegulatoryRule) {
	*p = PgRule{
		ID:          uuid.UUID(r.ID),
		Code:        r.Code,
		Authority:   string(r.Authority),
		Marketplace: string(r.Marketplace),
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Severity:    string(r.Severity),
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   nullTime(r.UpdatedAt),
	}
}
