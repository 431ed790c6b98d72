// Package template реализует подстановку плейсхолдеров {{path.to.field}}
// в текст шаблона документа. Никаких условий, циклов и экранирования —
// только плоская замена по точечному пути.
package template

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)*)\s*\}\}`)

// Render заменяет каждый плейсхолдер на строковое значение поля из контекста.
// Неразрешимый путь (отсутствующее поле либо проход сквозь не-объект)
// превращается в пустую строку, а не в ошибку.
//
// Контекст приводится к дереву map[string]any через JSON, поэтому имена
// сегментов пути совпадают с json-тегами моделей: client.fullName, unit.number.
func Render(content string, ctx any) string {
	tree := toTree(ctx)
	return placeholderRe.ReplaceAllStringFunc(content, func(token string) string {
		path := placeholderRe.FindStringSubmatch(token)[1]
		return resolve(tree, strings.Split(path, "."))
	})
}

func toTree(ctx any) map[string]any {
	raw, err := json.Marshal(ctx)
	if err != nil {
		return nil
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil
	}
	return tree
}

func resolve(node map[string]any, path []string) string {
	var current any = node
	for _, segment := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = obj[segment]
		if !ok {
			return ""
		}
	}
	return stringify(current)
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// json отдаёт все числа как float64; целые печатаем без ".0"
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		// Объекты и массивы в текст документа не подставляем
		return ""
	}
}
