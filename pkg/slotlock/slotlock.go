// Package slotlock реализует взаимное исключение по строковому ключу.
//
// Каждая комбинация (дата, время, стол) получает собственную блокировку,
// поэтому одновременные брони на разные столы не сериализуются между собой.
// Блокировки создаются по требованию и удаляются, когда последний
// ожидающий отпускает ключ: множество ключей не ограничено, держать
// мьютекс на каждый когда-либо виденный ключ нельзя.
package slotlock

import (
	"context"
	"sync"
)

type entry struct {
	ch   chan struct{} // буфер 1: токен владения
	refs int
}

// KeyedLock набор блокировок по ключу
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New создает пустой KeyedLock
func New() *KeyedLock {
	return &KeyedLock{locks: make(map[string]*entry)}
}

// Acquire захватывает блокировку для ключа key.
// Блокируется, пока ключ занят другим владельцем. При отмене контекста
// возвращает ctx.Err(), не захватив блокировку.
// Возвращенная release-функция должна быть вызвана ровно один раз.
func (k *KeyedLock) Acquire(ctx context.Context, key string) (release func(), err error) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-e.ch
				k.put(key, e)
			})
		}, nil
	case <-ctx.Done():
		k.put(key, e)
		return nil, ctx.Err()
	}
}

// put уменьшает счетчик ссылок и удаляет запись, когда она больше никому не нужна
func (k *KeyedLock) put(key string, e *entry) {
	k.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
}

// Len возвращает количество живых ключей (для тестов и диагностики)
func (k *KeyedLock) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
