package strength

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswordList keeps the embedded list in file order.
// commonPasswordSet holds the lowercased entries for lookup.
var (
	commonPasswordList []string
	commonPasswordSet  map[string]struct{}
)

func init() {
	lines := strings.Split(commonPasswordsRaw, "\n")
	commonPasswordList = make([]string, 0, len(lines))
	commonPasswordSet = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" || strings.HasPrefix(pw, "#") {
			continue
		}
		commonPasswordList = append(commonPasswordList, pw)
		commonPasswordSet[strings.ToLower(pw)] = struct{}{}
	}
}

// IsCommonPassword reports whether the password appears in the embedded
// common password list (case-insensitive).
func IsCommonPassword(password string) bool {
	_, ok := commonPasswordSet[strings.ToLower(password)]
	return ok
}

// CommonPasswords returns a copy of the embedded list in file order.
func CommonPasswords() []string {
	out := make([]string, len(commonPasswordList))
	copy(out, commonPasswordList)
	return out
}
