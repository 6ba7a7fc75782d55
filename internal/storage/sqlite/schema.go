package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS session_messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	message_id INTEGER NOT NULL,
	type TEXT NOT NULL,
	message TEXT NOT NULL,
	timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_messages_session ON session_messages(session_id, message_id);

CREATE TABLE IF NOT EXISTS checkpoints (
	tag TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	history TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`
