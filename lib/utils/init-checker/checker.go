package initchecker

import "fmt"

// CheckInit паникует на старте, если какая-то из зависимостей не
// инициализирована, пары (имя, значение)
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: нечётное число аргументов")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: первый аргумент пары должен быть строкой")
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("зависимость %s не инициализирована", name))
		}
	}
}
