// Package sanitize очищает свободный текст, присланный гостями.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

// controlChars управляющие символы, включая DEL и C1
var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)

// Text экранирует значимые для разметки символы, удаляет управляющие
// символы и обрезает пробелы по краям. При maxLength > 0 результат
// усекается до maxLength символов.
//
// Усечение здесь — внутренняя нормализация; поля, для которых превышение
// длины является ошибкой, проверяются до вызова с maxLength = 0.
func Text(s string, maxLength int) string {
	s = html.EscapeString(s)
	s = controlChars.ReplaceAllString(s, "")
	if maxLength > 0 {
		runes := []rune(s)
		if len(runes) > maxLength {
			s = string(runes[:maxLength])
		}
	}
	return strings.TrimSpace(s)
}
