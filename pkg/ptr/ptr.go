package ptr

// To возвращает указатель на переданное значение
// Удобно для опциональных полей фильтров и моделей
func To[T any](v T) *T {
	return &v
}
