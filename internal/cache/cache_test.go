package cache_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/cache"
)

var _ = Describe("TTL", func() {
	var (
		ttlCache *cache.TTL[string]
		now      time.Time
	)

	BeforeEach(func() {
		now = time.Now()
		cache.TimeNow = func() time.Time { return now }

		ttlCache = cache.New[string](10 * time.Second)
	})

	AfterEach(func() {
		cache.TimeNow = time.Now
	})

	Describe("Get", func() {
		When("the key has never been set", func() {
			It("should report a miss", func() {
				_, ok := ttlCache.Get("missing")
				Expect(ok).To(BeFalse())
			})
		})

		When("the entry is fresh", func() {
			BeforeEach(func() {
				ttlCache.Set("greeting", "hello")
				now = now.Add(9 * time.Second)
			})

			It("should return the stored value", func() {
				value, ok := ttlCache.Get("greeting")
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal("hello"))
			})
		})

		When("the entry is older than the ttl", func() {
			BeforeEach(func() {
				ttlCache.Set("greeting", "hello")
				now = now.Add(11 * time.Second)
			})

			It("should report a miss", func() {
				_, ok := ttlCache.Get("greeting")
				Expect(ok).To(BeFalse())
			})
		})
	})

	Describe("Set", func() {
		When("a stale key is written again", func() {
			BeforeEach(func() {
				ttlCache.Set("greeting", "hello")
				now = now.Add(11 * time.Second)
				ttlCache.Set("greeting", "hello again")
			})

			It("should reset the expiry window", func() {
				value, ok := ttlCache.Get("greeting")
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal("hello again"))
			})
		})
	})
})
