package testutils

// SampleCodeSQL holds SQL script samples keyed by rule ID.
var SampleCodeSQL = map[string][]CodeSample{
	"sql-dynamic-sql": {
		{`
EXEC('SELECT * FROM ' + @table);
`, "report.sql", 1},
		{`
EXEC sp_executesql N'SELECT * FROM t WHERE id = @id', N'@id INT', @id = 1;
`, "report.sql", 0},
		{`
SET @sql = 'SELECT * FROM users WHERE name = ''' + @name + '''';
`, "report.sql", 1},
	},
	"sql-update-without-where": {
		{`
UPDATE accounts SET balance = 0;
`, "migrate.sql", 1},
		{`
UPDATE accounts
SET balance = 0
WHERE id = 7;
`, "migrate.sql", 0},
		{`
UPDATE accounts
SET balance = 0;
`, "migrate.sql", 1},
		{`
-- UPDATE accounts SET balance = 0;
`, "migrate.sql", 0},
	},
	"sql-delete-without-where": {
		{`
DELETE FROM sessions;
`, "cleanup.sql", 1},
		{`
DELETE FROM sessions WHERE expires_at < now();
`, "cleanup.sql", 0},
	},
	"sql-grant-all": {
		{`
GRANT ALL PRIVILEGES ON app.* TO 'app'@'%';
`, "grants.sql", 1},
		{`
GRANT SELECT ON app.users TO reporting;
`, "grants.sql", 0},
	},
	"sql-hardcoded-password": {
		{`
CREATE USER app IDENTIFIED BY 'S3cr3t!';
CREATE ROLE reader WITH PASSWORD 'changeme42';
`, "users.sql", 2},
		{`
CREATE ROLE reader WITH LOGIN;
`, "users.sql", 0},
	},
}
