package postgres

import (
	"context"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	rulesTable = "regulatory_rules"
)

// UpsertRules writes rules keyed by their code. Existing rows keep their id and
// creation time while every other column is replaced.
func (p *PgSQL) UpsertRules(ctx context.Context, rules ...domain.RegulatoryRule) (int64, error) {
	if len(rules) == 0 {
		return 0, nil
	}

	rows := make([]PgRule, len(rules))
	for i := range rules {
		rows[i].FromDomain(rules[i])
	}

	res, err := p.Builder.Insert(rulesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("code", goqu.Record{
			"authority":   goqu.L("EXCLUDED.authority"),
			"marketplace": goqu.L("EXCLUDED.marketplace"),
			"category":    goqu.L("EXCLUDED.category"),
			"title":       goqu.L("EXCLUDED.title"),
			"description": goqu.L("EXCLUDED.description"),
			"severity":    goqu.L("EXCLUDED.severity"),
			"active":      goqu.L("EXCLUDED.active"),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not upsert rules into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) StoreRule(ctx context.Context, rule domain.RegulatoryRule) (*domain.RegulatoryRule, error) {
	var in, row PgRule
	in.FromDomain(rule)

	if _, err := p.Builder.Insert(rulesTable).
		Rows(in).
		Returning(&PgRule{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store rule: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store rule into pg: %w", err)
	}

	out := row.ToDomain()

	return &out, nil
}

func (p *PgSQL) UpdateRule(ctx context.Context,
	id domain.RuleID,
	updates storage.RuleUpdates) (*domain.RegulatoryRule, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Authority != nil {
		rec["authority"] = string(*updates.Authority)
	}
	if updates.Marketplace != nil {
		rec["marketplace"] = string(*updates.Marketplace)
	}
	if updates.Category != nil {
		rec["category"] = *updates.Category
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.Severity != nil {
		rec["severity"] = string(*updates.Severity)
	}
	if updates.Active != nil {
		rec["active"] = *updates.Active
	}

	var row PgRule
	found, err := p.Builder.Update(rulesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgRule{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update rule in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

func (p *PgSQL) DeleteRule(ctx context.Context, id domain.RuleID) (bool, error) {
	res, err := p.Builder.Delete(rulesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete rule in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) Rules(ctx context.Context, filter storage.RuleFilter) ([]domain.RegulatoryRule, error) {
	var w []exp.Expression
	if len(filter.Marketplaces) > 0 {
		codes := make([]string, len(filter.Marketplaces))
		for i, m := range filter.Marketplaces {
			codes[i] = string(m)
		}
		w = append(w, goqu.I("marketplace").In(codes))
	}
	if filter.ActiveOnly {
		w = append(w, goqu.I("active").IsTrue())
	}

	var rows []PgRule
	if err := p.Builder.From(rulesTable).
		Where(w...).
		Order(goqu.I("marketplace").Asc(), goqu.I("code").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch rules from pg: %w", err)
	}

	out := make([]domain.RegulatoryRule, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
