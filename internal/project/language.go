package project

import "fmt"

// Language is one of the supported project languages.
type Language int

const (
	Python Language = iota
	CPP
	Rust
	Flutter
)

// All returns every supported language in display order.
func All() []Language {
	return []Language{Python, CPP, Rust, Flutter}
}

func (l Language) String() string {
	switch l {
	case Python:
		return "Python"
	case CPP:
		return "C++"
	case Rust:
		return "Rust"
	case Flutter:
		return "Dart/Flutter"
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Slug returns a filesystem-friendly name, used as the default component
// directory in multi-language projects.
func (l Language) Slug() string {
	switch l {
	case Python:
		return "python"
	case CPP:
		return "cpp"
	case Rust:
		return "rust"
	case Flutter:
		return "flutter"
	}
	return "unknown"
}

// BuildCommand returns the shell command that builds a component of this
// language, relative to the component directory.
func (l Language) BuildCommand() string {
	switch l {
	case CPP:
		return "cmake --build ./build"
	case Rust:
		return "cargo build"
	case Flutter:
		return "flutter build"
	case Python:
		return "echo 'No build step for python'"
	}
	return ""
}

// ParseLanguage maps a display name back to its Language.
func ParseLanguage(name string) (Language, error) {
	for _, l := range All() {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unsupported language %q", name)
}

// Names returns the display names of langs, preserving order.
func Names(langs []Language) []string {
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.String()
	}
	return names
}
