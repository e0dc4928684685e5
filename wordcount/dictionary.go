package wordcount

import (
	"math"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Count — количество вхождений слова.
type Count uint32

// MaxCount — потолок счётчика, дальше Increment не растёт.
const MaxCount Count = math.MaxUint32

// Entry — одна запись словаря.
type Entry struct {
	Word  string
	Count Count
}

// степень B-дерева, для словаря в десятки тысяч слов хватает с запасом
const btreeDegree = 32

// Dictionary — упорядоченное по словам отображение слово -> счётчик.
// Ключи уникальны, после загрузки значения только растут.
type Dictionary struct {
	tree *btree.BTreeG[Entry]
}

func entryLess(a, b Entry) bool {
	return a.Word < b.Word
}

// NewDictionary создаёт пустой словарь
func NewDictionary() *Dictionary {
	return &Dictionary{tree: btree.NewG(btreeDegree, entryLess)}
}

// Seed добавляет слово с начальным значением.
// Если слово уже есть, остаётся первое значение и возвращается false.
func (d *Dictionary) Seed(word string, count Count) bool {
	if d.tree.Has(Entry{Word: word}) {
		return false
	}
	d.tree.ReplaceOrInsert(Entry{Word: word, Count: count})
	return true
}

// Increment увеличивает счётчик слова на единицу и возвращает новое значение.
// Отсутствующее слово сначала заводится с нулём.
func (d *Dictionary) Increment(word string) Count {
	e, _ := d.tree.Get(Entry{Word: word})
	e.Word = word
	e.Count = saturatingAdd(e.Count, 1)
	d.tree.ReplaceOrInsert(e)
	return e.Count
}

func (d *Dictionary) Get(word string) (Count, bool) {
	e, ok := d.tree.Get(Entry{Word: word})
	return e.Count, ok
}

func (d *Dictionary) Len() int {
	return d.tree.Len()
}

// Ascend обходит записи в порядке возрастания слов, пока fn возвращает true
func (d *Dictionary) Ascend(fn func(e Entry) bool) {
	d.tree.Ascend(btree.ItemIteratorG[Entry](fn))
}

// NonZero возвращает записи с ненулевым счётчиком в порядке слов.
func (d *Dictionary) NonZero() []Entry {
	var entries []Entry
	d.Ascend(func(e Entry) bool {
		if e.Count != 0 {
			entries = append(entries, e)
		}
		return true
	})
	return entries
}

// saturatingAdd складывает без переполнения: при переполнении возвращает максимум типа
func saturatingAdd[T constraints.Unsigned](a, b T) T {
	if s := a + b; s >= a {
		return s
	}
	return ^T(0)
}
