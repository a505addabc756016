// Package models defines the canonical output records of the content snapshot.
//
// Every record carries a non-empty, URL-safe slug. Products hold an ordered
// VariantMap that is never empty and whose DefaultKey always names one of its keys.
package models
