package jsonvalue

import (
	"strconv"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	data := []byte(testRecordsJSON)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v, err := ParseBytes(data)
		if err != nil {
			b.Fatal(err)
		}
		v.Close()
	}
}

func BenchmarkToBuffer(b *testing.B) {
	v, err := Parse(testRecordsJSON)
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf, err := v.ToBuffer()
		if err != nil {
			b.Fatal(err)
		}
		buf.Release()
	}
}

func BenchmarkGetValue(b *testing.B) {
	v, err := Parse(testConfigJSON)
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := v.GetValue("dbtype"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPutInt64(b *testing.B) {
	v := New()
	defer v.Close()
	_ = v.CreateRootObject()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := v.PutInt64("n", int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStringCollection(b *testing.B) {
	set := NewStringSet()
	for i := 0; i < 1000; i++ {
		set.Insert("item-" + strconv.Itoa(i))
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v := New()
		if err := v.PutStringCollection("", set, NoLimit()); err != nil {
			b.Fatal(err)
		}
		out := NewStringSet()
		if err := v.GetStringCollection("", out, LimitOf(100)); err != nil {
			b.Fatal(err)
		}
		v.Close()
	}
}
