package generation

import (
	"fmt"
	"strings"
)

// SystemPrompt pins the assistant persona and output language.
const SystemPrompt = "Ты пишешь продающие описания автозапчастей. Используй только русский язык."

// RetryReminder is appended as an extra user message on retry attempts after
// an empty or non-Russian response.
const RetryReminder = "Предыдущий ответ был пустой или не на русском. " +
	"Сейчас обязательно верни развёрнутое описание на русском языке."

const promptTemplate = `Ты специалист по автозапчастям и маркетолог. Используй данные:
- Артикул: %s
- Наименование: %s

Задача:
1. Напиши структурированное HTML-описание (h2/h3/p/ul/li/strong) на русском языке.
2. Сделай акцент на назначении запчасти, преимуществах, совместимости и установке.
3. Укажи артикул и ключевые выгоды.
4. Объём 90–140 слов. Не добавляй произвольные цены и ссылки.
`

// BuildPrompt renders the description prompt for one catalog part.
func BuildPrompt(article, name string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(article), strings.TrimSpace(name))
}
