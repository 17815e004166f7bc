package database

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// normalizeRecord flattens a result record into a plain map keyed by the
// return aliases, with every value normalized.
func normalizeRecord(record *db.Record) map[string]any {
	row := make(map[string]any, len(record.Keys))
	for i, key := range record.Keys {
		row[key] = normalizeValue(record.Values[i])
	}
	return row
}

// normalizeValue converts store-native types into portable Go values: nodes
// and relationships become their property maps, temporal types become
// time.Time, durations become strings, and containers are walked recursively.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case dbtype.Node:
		return normalizeMap(val.Props)
	case dbtype.Relationship:
		return normalizeMap(val.Props)
	case dbtype.Date:
		return val.Time()
	case dbtype.LocalDateTime:
		return val.Time()
	case dbtype.LocalTime:
		return val.Time()
	case dbtype.Time:
		return val.Time()
	case dbtype.Duration:
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case map[string]any:
		return normalizeMap(val)
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = normalizeValue(value)
	}
	return out
}

// Accessors for normalized rows. Absent keys and mismatched types yield zero
// values; integer coercion covers the store returning int64 for all integers.

func AsString(row map[string]any, key string) string {
	s, _ := row[key].(string)
	return s
}

func AsInt(row map[string]any, key string) int {
	switch n := row[key].(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func AsFloat(row map[string]any, key string) float64 {
	switch n := row[key].(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func AsTime(row map[string]any, key string) time.Time {
	t, _ := row[key].(time.Time)
	return t
}

func AsMap(row map[string]any, key string) map[string]any {
	m, _ := row[key].(map[string]any)
	return m
}
