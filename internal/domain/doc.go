// Package domain contains the core model of the club: people, activities,
// facilities and the Club aggregate that owns them.
//
// The domain is persistence-agnostic: it does not depend on JSON, YAML, net/http,
// or the filesystem. Infra/adapters map into/from these types.
package domain
