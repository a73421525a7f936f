package token

import "slices"

// Reserved words.
const (
	ACTION       Type = "ACTION"
	ALL          Type = "ALL"
	ALTER        Type = "ALTER"
	ANALYZE      Type = "ANALYZE"
	AND          Type = "AND"
	ANY          Type = "ANY"
	ARRAY        Type = "ARRAY"
	AS           Type = "AS"
	ASC          Type = "ASC"
	BEGIN        Type = "BEGIN"
	BETWEEN      Type = "BETWEEN"
	BIGINT       Type = "BIGINT"
	BIT          Type = "BIT"
	BOOLEAN      Type = "BOOLEAN"
	BOTH         Type = "BOTH"
	BY           Type = "BY"
	CASCADE      Type = "CASCADE"
	CASE         Type = "CASE"
	CAST         Type = "CAST"
	CHAR         Type = "CHAR"
	CHARACTER    Type = "CHARACTER"
	CHECK        Type = "CHECK"
	CLUSTER      Type = "CLUSTER"
	COALESCE     Type = "COALESCE"
	COLLATE      Type = "COLLATE"
	COLUMN       Type = "COLUMN"
	COMMIT       Type = "COMMIT"
	COMMITTED    Type = "COMMITTED"
	CONSTRAINT   Type = "CONSTRAINT"
	COPY         Type = "COPY"
	CREATE       Type = "CREATE"
	CROSS        Type = "CROSS"
	CURRENT      Type = "CURRENT"
	DATABASE     Type = "DATABASE"
	DATE         Type = "DATE"
	DECIMAL      Type = "DECIMAL"
	DEFAULT      Type = "DEFAULT"
	DEFERRABLE   Type = "DEFERRABLE"
	DEFERRED     Type = "DEFERRED"
	DELETE       Type = "DELETE"
	DESC         Type = "DESC"
	DISTINCT     Type = "DISTINCT"
	DOUBLE       Type = "DOUBLE"
	DROP         Type = "DROP"
	ELSE         Type = "ELSE"
	END          Type = "END"
	EXCEPT       Type = "EXCEPT"
	EXECUTE      Type = "EXECUTE"
	EXISTS       Type = "EXISTS"
	EXPLAIN      Type = "EXPLAIN"
	EXTRACT      Type = "EXTRACT"
	FALSE        Type = "FALSE"
	FOLLOWING    Type = "FOLLOWING"
	FOR          Type = "FOR"
	FOREIGN      Type = "FOREIGN"
	FROM         Type = "FROM"
	FULL         Type = "FULL"
	FUNCTION     Type = "FUNCTION"
	GRANT        Type = "GRANT"
	GROUP        Type = "GROUP"
	HAVING       Type = "HAVING"
	IF           Type = "IF"
	ILIKE        Type = "ILIKE"
	IMMEDIATE    Type = "IMMEDIATE"
	IN           Type = "IN"
	INDEX        Type = "INDEX"
	INITIALLY    Type = "INITIALLY"
	INNER        Type = "INNER"
	INSERT       Type = "INSERT"
	INTEGER      Type = "INTEGER"
	INTERSECT    Type = "INTERSECT"
	INTERVAL     Type = "INTERVAL"
	INTO         Type = "INTO"
	IS           Type = "IS"
	JOIN         Type = "JOIN"
	JSON         Type = "JSON"
	JSONB        Type = "JSONB"
	KEY          Type = "KEY"
	LEADING      Type = "LEADING"
	LEFT         Type = "LEFT"
	LEVEL        Type = "LEVEL"
	LIKE         Type = "LIKE"
	LIMIT        Type = "LIMIT"
	LOCAL        Type = "LOCAL"
	MATCH        Type = "MATCH"
	NATURAL      Type = "NATURAL"
	NO           Type = "NO"
	NOT          Type = "NOT"
	NULL         Type = "NULL"
	NUMERIC      Type = "NUMERIC"
	OFFSET       Type = "OFFSET"
	ON           Type = "ON"
	ONLY         Type = "ONLY"
	OR           Type = "OR"
	ORDER        Type = "ORDER"
	OUTER        Type = "OUTER"
	OVER         Type = "OVER"
	OVERLAY      Type = "OVERLAY"
	PARTIAL      Type = "PARTIAL"
	PARTITION    Type = "PARTITION"
	POSITION     Type = "POSITION"
	PRECEDING    Type = "PRECEDING"
	PRECISION    Type = "PRECISION"
	PRIMARY      Type = "PRIMARY"
	PROCEDURE    Type = "PROCEDURE"
	PUBLIC       Type = "PUBLIC"
	RANGE        Type = "RANGE"
	READ         Type = "READ"
	REAL         Type = "REAL"
	RECURSIVE    Type = "RECURSIVE"
	REFERENCES   Type = "REFERENCES"
	REINDEX      Type = "REINDEX"
	RESTRICT     Type = "RESTRICT"
	REVOKE       Type = "REVOKE"
	RIGHT        Type = "RIGHT"
	ROLE         Type = "ROLE"
	ROLLBACK     Type = "ROLLBACK"
	ROW          Type = "ROW"
	ROWS         Type = "ROWS"
	SCHEMA       Type = "SCHEMA"
	SELECT       Type = "SELECT"
	SERIALIZABLE Type = "SERIALIZABLE"
	SET          Type = "SET"
	SIMILAR      Type = "SIMILAR"
	SMALLINT     Type = "SMALLINT"
	SOME         Type = "SOME"
	START        Type = "START"
	SUBSTRING    Type = "SUBSTRING"
	TABLE        Type = "TABLE"
	TEMP         Type = "TEMP"
	TEMPORARY    Type = "TEMPORARY"
	TEXT         Type = "TEXT"
	THEN         Type = "THEN"
	TIME         Type = "TIME"
	TIMESTAMP    Type = "TIMESTAMP"
	TRAILING     Type = "TRAILING"
	TRANSACTION  Type = "TRANSACTION"
	TRIGGER      Type = "TRIGGER"
	TRIM         Type = "TRIM"
	TRUE         Type = "TRUE"
	TRUNCATE     Type = "TRUNCATE"
	UNBOUNDED    Type = "UNBOUNDED"
	UNCOMMITTED  Type = "UNCOMMITTED"
	UNION        Type = "UNION"
	UNIQUE       Type = "UNIQUE"
	UPDATE       Type = "UPDATE"
	USER         Type = "USER"
	USING        Type = "USING"
	VACUUM       Type = "VACUUM"
	VARCHAR      Type = "VARCHAR"
	VIEW         Type = "VIEW"
	WHEN         Type = "WHEN"
	WHERE        Type = "WHERE"
	WINDOW       Type = "WINDOW"
	WITH         Type = "WITH"
	WORK         Type = "WORK"
	WRITE        Type = "WRITE"
)

type keyword struct {
	spelling string
	kind     Type
}

// keywords is sorted by spelling and must never be modified.
var keywords = []keyword{
	{"action", ACTION},
	{"all", ALL},
	{"alter", ALTER},
	{"analyze", ANALYZE},
	{"and", AND},
	{"any", ANY},
	{"array", ARRAY},
	{"as", AS},
	{"asc", ASC},
	{"begin", BEGIN},
	{"between", BETWEEN},
	{"bigint", BIGINT},
	{"bit", BIT},
	{"boolean", BOOLEAN},
	{"both", BOTH},
	{"by", BY},
	{"cascade", CASCADE},
	{"case", CASE},
	{"cast", CAST},
	{"char", CHAR},
	{"character", CHARACTER},
	{"check", CHECK},
	{"cluster", CLUSTER},
	{"coalesce", COALESCE},
	{"collate", COLLATE},
	{"column", COLUMN},
	{"commit", COMMIT},
	{"committed", COMMITTED},
	{"constraint", CONSTRAINT},
	{"copy", COPY},
	{"create", CREATE},
	{"cross", CROSS},
	{"current", CURRENT},
	{"database", DATABASE},
	{"date", DATE},
	{"decimal", DECIMAL},
	{"default", DEFAULT},
	{"deferrable", DEFERRABLE},
	{"deferred", DEFERRED},
	{"delete", DELETE},
	{"desc", DESC},
	{"distinct", DISTINCT},
	{"double", DOUBLE},
	{"drop", DROP},
	{"else", ELSE},
	{"end", END},
	{"except", EXCEPT},
	{"execute", EXECUTE},
	{"exists", EXISTS},
	{"explain", EXPLAIN},
	{"extract", EXTRACT},
	{"false", FALSE},
	{"following", FOLLOWING},
	{"for", FOR},
	{"foreign", FOREIGN},
	{"from", FROM},
	{"full", FULL},
	{"function", FUNCTION},
	{"grant", GRANT},
	{"group", GROUP},
	{"having", HAVING},
	{"if", IF},
	{"ilike", ILIKE},
	{"immediate", IMMEDIATE},
	{"in", IN},
	{"index", INDEX},
	{"initially", INITIALLY},
	{"inner", INNER},
	{"insert", INSERT},
	{"integer", INTEGER},
	{"intersect", INTERSECT},
	{"interval", INTERVAL},
	{"into", INTO},
	{"is", IS},
	{"join", JOIN},
	{"json", JSON},
	{"jsonb", JSONB},
	{"key", KEY},
	{"leading", LEADING},
	{"left", LEFT},
	{"level", LEVEL},
	{"like", LIKE},
	{"limit", LIMIT},
	{"local", LOCAL},
	{"match", MATCH},
	{"natural", NATURAL},
	{"no", NO},
	{"not", NOT},
	{"null", NULL},
	{"numeric", NUMERIC},
	{"offset", OFFSET},
	{"on", ON},
	{"only", ONLY},
	{"or", OR},
	{"order", ORDER},
	{"outer", OUTER},
	{"over", OVER},
	{"overlay", OVERLAY},
	{"partial", PARTIAL},
	{"partition", PARTITION},
	{"position", POSITION},
	{"preceding", PRECEDING},
	{"precision", PRECISION},
	{"primary", PRIMARY},
	{"procedure", PROCEDURE},
	{"public", PUBLIC},
	{"range", RANGE},
	{"read", READ},
	{"real", REAL},
	{"recursive", RECURSIVE},
	{"references", REFERENCES},
	{"reindex", REINDEX},
	{"restrict", RESTRICT},
	{"revoke", REVOKE},
	{"right", RIGHT},
	{"role", ROLE},
	{"rollback", ROLLBACK},
	{"row", ROW},
	{"rows", ROWS},
	{"schema", SCHEMA},
	{"select", SELECT},
	{"serializable", SERIALIZABLE},
	{"set", SET},
	{"similar", SIMILAR},
	{"smallint", SMALLINT},
	{"some", SOME},
	{"start", START},
	{"substring", SUBSTRING},
	{"table", TABLE},
	{"temp", TEMP},
	{"temporary", TEMPORARY},
	{"text", TEXT},
	{"then", THEN},
	{"time", TIME},
	{"timestamp", TIMESTAMP},
	{"trailing", TRAILING},
	{"transaction", TRANSACTION},
	{"trigger", TRIGGER},
	{"trim", TRIM},
	{"true", TRUE},
	{"truncate", TRUNCATE},
	{"unbounded", UNBOUNDED},
	{"uncommitted", UNCOMMITTED},
	{"union", UNION},
	{"unique", UNIQUE},
	{"update", UPDATE},
	{"user", USER},
	{"using", USING},
	{"vacuum", VACUUM},
	{"varchar", VARCHAR},
	{"view", VIEW},
	{"when", WHEN},
	{"where", WHERE},
	{"window", WINDOW},
	{"with", WITH},
	{"work", WORK},
	{"write", WRITE},
}

// LookupKeyword reports the reserved-word kind spelled by ident, ignoring
// ASCII case. A keyword matches only when its length equals len(ident).
func LookupKeyword(ident string) (Type, bool) {
	i, found := slices.BinarySearchFunc(keywords, ident, func(kw keyword, target string) int {
		return compareFold(kw.spelling, target)
	})
	if !found {
		return IDENT, false
	}
	return keywords[i].kind, true
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	t, _ := LookupKeyword(ident)
	return t
}

// Keywords returns the reserved-word spellings in table order.
func Keywords() []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = kw.spelling
	}
	return out
}

// compareFold orders a and b byte-wise after folding ASCII upper case to
// lower case. A string that is a prefix of the other sorts first.
func compareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		ca, cb := lower(a[i]), lower(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
