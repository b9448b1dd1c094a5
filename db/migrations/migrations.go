package migrations

import "embed"

// FS embeds the schema of the read-only pacing store: campaigns, raw
// line-item payloads and channel-tagged delivery payloads. golang-migrate
// reads it through the iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to.
const Version = 1
