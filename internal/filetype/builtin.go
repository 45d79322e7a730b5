package filetype

import "github.com/xonecas/kite/internal/highlight"

var rust = FileType{
	Name: "Rust",
	Options: highlight.Options{
		Numbers:    true,
		Strings:    true,
		Characters: true,
		Comments:   true,
		PrimaryKeys: []string{
			"as", "break", "const", "continue", "crate", "else", "enum",
			"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop",
			"match", "mod", "move", "mut", "pub", "ref", "return", "self",
			"Self", "static", "struct", "super", "trait", "true", "type",
			"unsafe", "use", "where", "while", "dyn", "abstract", "become",
			"box", "do", "final", "macro", "override", "priv", "typeof",
			"unsized", "virtual", "yield", "async", "await", "try",
		},
		SecondaryKeys: []string{
			"bool", "char", "i8", "i16", "i32", "i64", "i128", "isize",
			"u8", "u16", "u32", "u64", "u128", "usize", "f32", "f64",
		},
	},
}

var golang = FileType{
	Name: "Go",
	Options: highlight.Options{
		Numbers:    true,
		Strings:    true,
		Characters: true,
		Comments:   true,
		PrimaryKeys: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "package", "range", "return",
			"select", "struct", "switch", "type", "var", "nil", "true",
			"false", "iota",
		},
		SecondaryKeys: []string{
			"any", "bool", "byte", "comparable", "complex64", "complex128",
			"error", "float32", "float64", "int", "int8", "int16", "int32",
			"int64", "rune", "string", "uint", "uint8", "uint16", "uint32",
			"uint64", "uintptr",
		},
	},
}

var c = FileType{
	Name: "C",
	Options: highlight.Options{
		Numbers:    true,
		Strings:    true,
		Characters: true,
		Comments:   true,
		PrimaryKeys: []string{
			"auto", "break", "case", "const", "continue", "default", "do",
			"else", "enum", "extern", "for", "goto", "if", "inline",
			"register", "restrict", "return", "sizeof", "static", "struct",
			"switch", "typedef", "union", "volatile", "while", "NULL",
		},
		SecondaryKeys: []string{
			"char", "double", "float", "int", "long", "short", "signed",
			"unsigned", "void", "size_t", "bool",
		},
	},
}

var javascript = FileType{
	Name: "JavaScript",
	Options: highlight.Options{
		Numbers:  true,
		Strings:  true,
		Comments: true,
		PrimaryKeys: []string{
			"async", "await", "break", "case", "catch", "class", "const",
			"continue", "debugger", "default", "delete", "do", "else",
			"export", "extends", "finally", "for", "function", "if",
			"import", "in", "instanceof", "let", "new", "return", "super",
			"switch", "this", "throw", "try", "typeof", "var", "void",
			"while", "with", "yield",
		},
		SecondaryKeys: []string{
			"true", "false", "null", "undefined", "NaN", "Infinity",
		},
	},
}

var builtins = map[string]FileType{
	"rs":  rust,
	"go":  golang,
	"c":   c,
	"h":   c,
	"js":  javascript,
	"mjs": javascript,
}
