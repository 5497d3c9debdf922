// Package fuzztests houses Go fuzz harnesses that exercise the front of the
// pipeline (source -> lexer -> token trees -> key extraction) and the locale
// decoders. Its goal is to smoke test robustness and guard against panics or
// hangs on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet
// и прогоняют их через лексер, разбор скобок и извлечение ключей, а также
// через декодеры YAML/TOML/JSON и проверку таблицы локали.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
