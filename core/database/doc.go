// Package database opens the optional relational store backing the sync run history.
//
// It wraps GORM and supports MySQL for deployments and SQLite for local runs and
// tests. The connection is verified with a ping bounded by the configured timeout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
