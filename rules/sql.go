package rules

import (
	"github.com/zirafica98/neatcommit/issue"
	"github.com/zirafica98/neatcommit/language"
)

func sqlRules() []*Rule {
	return []*Rule{
		{
			MetaData: issue.MetaData{
				ID:       "sql-dynamic-sql",
				Name:     "Dynamic SQL by concatenation",
				Severity: issue.Critical,
				Category: issue.SQLInjection,
				CWE:      "89",
				Message:  "Statement text concatenated before execution: {{.Match}}",
				Fix:      "Use sp_executesql or EXECUTE ... USING with parameters; quote identifiers with QUOTENAME/quote_ident.",
			},
			Language: language.SQL,
			Pattern: Unless(
				AnyOf(
					Regex(`(?i)(?P<hit>\bexec(?:ute)?\s*\(\s*(?:@\w+|N?'[^']*'\s*\+).*)`),
					Regex(`(?i)(?P<hit>\bsp_executesql\s+(?:@\w+|N?'[^']*'\s*\+).*)`),
					Regex(`(?i)(?P<hit>\bexecute\s+'[^']*'\s*\|\|.*)`),
					Regex(`(?i)(?P<hit>\bwhere\b.*=\s*'+\s*(?:\+|\|\|)\s*@?\w+.*)`),
					Regex(`(?i)(?P<hit>'[^']*\b`+sqlVerb+`\b[^']*'+\s*(?:\+|\|\|)\s*@?\w+.*)`),
				),
				`(?i)quotename\s*\(|quote_ident\s*\(|quote_literal\s*\(|format\s*\([^)]*%[IL]`,
			),
		},
		{
			MetaData: issue.MetaData{
				ID:       "sql-update-without-where",
				Name:     "UPDATE without WHERE",
				Severity: issue.High,
				Category: issue.UnsafeDML,
				CWE:      "1284",
				Message:  "UPDATE touches every row: {{.Match}}",
				Fix:      "Add a WHERE clause, or state WHERE 1=1 when the full table update is intended.",
			},
			Language: language.SQL,
			Pattern:  MissingClause(`(?i)^\s*update\s+[\w.\[\]"`+"`"+`]+(?:\s+set\b|\s*$)`, `(?i)\bwhere\b`, 20),
		},
		{
			MetaData: issue.MetaData{
				ID:       "sql-delete-without-where",
				Name:     "DELETE without WHERE",
				Severity: issue.High,
				Category: issue.UnsafeDML,
				CWE:      "1284",
				Message:  "DELETE removes every row: {{.Match}}",
				Fix:      "Add a WHERE clause, or use TRUNCATE when clearing the table is intended.",
			},
			Language: language.SQL,
			Pattern:  MissingClause(`(?i)^\s*delete\s+(?:from\s+)?[\w.\[\]"`+"`"+`]+`, `(?i)\bwhere\b`, 20),
		},
		{
			MetaData: issue.MetaData{
				ID:       "sql-grant-all",
				Name:     "GRANT ALL",
				Severity: issue.High,
				Category: issue.ExcessivePrivilege,
				CWE:      "250",
				Message:  "All privileges granted: {{.Match}}",
				Fix:      "Grant only the privileges the role needs, e.g. SELECT, INSERT.",
			},
			Language: language.SQL,
			Pattern:  Regex(`(?i)(?P<hit>\bgrant\s+all(?:\s+privileges)?\b.*)`),
		},
		{
			MetaData: issue.MetaData{
				ID:       "sql-hardcoded-password",
				Name:     "Password literal in DDL",
				Severity: issue.Critical,
				Category: issue.HardcodedSecret,
				CWE:      "798",
				Message:  "Account password written in the script: {{.Match}}",
				Fix:      "Create accounts from a provisioning tool that reads the password from a vault.",
			},
			Language: language.SQL,
			Pattern:  Regex(`(?i)(?P<hit>\b(?:identified\s+(?:with\s+\w+\s+)?by|with\s+(?:encrypted\s+)?password)\s+'[^']+')`),
		},
	}
}
