package promo

// DefaultCodes фиксированная таблица промокодов: код -> абсолютная скидка
// Скидки плоские (в валютных единицах), не проценты
var DefaultCodes = map[string]float64{
	"SAVE10":    10,
	"WELCOME50": 50,
	"FESTIVE20": 20,
}

// Engine движок промокодов поверх таблицы код -> скидка
// Движок не проверяет, что скидка не превышает цену слота — это зона
// ответственности вызывающего при расчёте итоговой суммы
type Engine struct {
	codes map[string]float64
}

// NewEngine создает движок с дефолтной таблицей промокодов
func NewEngine() *Engine {
	return NewEngineWithCodes(DefaultCodes)
}

// NewEngineWithCodes создает движок с произвольной таблицей
// Таблица копируется, чтобы движок не зависел от мутаций снаружи
func NewEngineWithCodes(codes map[string]float64) *Engine {
	table := make(map[string]float64, len(codes))
	for code, discount := range codes {
		table[code] = discount
	}
	return &Engine{codes: table}
}

// Apply возвращает скидку по коду
// Нераспознанный код — no-op: (0, false), состояние вызывающего не меняется
// К бронированию применяется не более одного кода: повторный Apply с другим
// кодом у вызывающего просто перезаписывает предыдущую скидку
func (e *Engine) Apply(code string) (float64, bool) {
	discount, ok := e.codes[code]
	if !ok {
		return 0, false
	}
	return discount, true
}
