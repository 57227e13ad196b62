package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferRepo struct {
	db *pgxpool.Pool
}

func NewOfferRepo(db *pgxpool.Pool) *OfferRepo {
	return &OfferRepo{db: db}
}

type LeadRepo struct {
	db *pgxpool.Pool
}

func NewLeadRepo(db *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{db: db}
}

type PartnerRepo struct {
	db *pgxpool.Pool
}

func NewPartnerRepo(db *pgxpool.Pool) *PartnerRepo {
	return &PartnerRepo{db: db}
}

type RentalRepo struct {
	db *pgxpool.Pool
}

func NewRentalRepo(db *pgxpool.Pool) *RentalRepo {
	return &RentalRepo{db: db}
}

type ShareRepo struct {
	db *pgxpool.Pool
}

func NewShareRepo(db *pgxpool.Pool) *ShareRepo {
	return &ShareRepo{db: db}
}
