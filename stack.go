package realvec

// Modified
// from https://github.com/AlexandreChamard/go-generic

/*
Copyright (c) 2022 Alexandre Chamard-Bois

Permission is hereby granted, free of charge, to any person obtaining
a copy of this software and associated documentation files (the
"Software"), to deal in the Software without restriction, including
without limitation the rights to use, copy, modify, merge, publish,
distribute, sublicense, and/or sell copies of the Software, and to
permit persons to whom the Software is furnished to do so, subject to
the following conditions:

The above copyright notice and this permission notice shall be
included in all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

// Stack is a LIFO adapter over a Sequence.
type Stack[T any] struct {
	seq Sequence[T]
}

func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

func (this *Stack[T]) Empty() bool { return this.seq.Empty() }
func (this *Stack[T]) Size() int   { return this.seq.Size() }
func (this *Stack[T]) Push(info T) { this.seq.Append(info) }

func (this *Stack[T]) Top() (T, error) {
	p, err := this.TopPtr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (this *Stack[T]) TopPtr() (*T, error) {
	if this.seq.Empty() {
		return nil, ErrEmpty
	}
	return this.seq.Ref(this.seq.Size() - 1), nil
}

func (this *Stack[T]) Pop() (T, error) { return this.seq.PopBack() }
