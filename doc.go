// Package attribution is a small, dependency-light toolkit for multi-touch
// marketing attribution: how much credit does each channel (and each
// channel at a given journey position) deserve for observed outcomes?
//
// 🚀 What is attribution?
//
//	A modern, deterministic library that brings together:
//		• Journeys: fixed-width tables of per-user channel touches + CSV ingestion
//		• Matrix: a bounds-checked dense store for position × channel credit
//		• Shapley: coalition-weighted credit, order-agnostic and position-aware
//		• CLI: fit and score from CSV files (cmd/attribute)
//
// ✨ Why choose attribution?
//
//   - Explicit errors – dimension mismatch, zero normalization, unfitted scoring
//   - Deterministic – fixed iteration orders, idempotent fits
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under three packages:
//
//	journey/ Channel, Missing, Table, ReadCSV, ReadValues
//	matrix/  Dense row-major matrix with finite-value policy
//	shapley/ Engine: New, Fit, FitOrdered, ScoreUser
//
// Quick example:
//
//	   user │ t0  t1 │ value
//	   ─────┼────────┼──────
//	     0  │  0   1 │  10
//	     1  │  0   · │   5
//	     2  │  1   · │   5
//
//	gives channels 0 and 1 equal credit (0.5 each) in the order-agnostic fit.
//
//	go get github.com/katalvlaran/attribution/shapley
package attribution
