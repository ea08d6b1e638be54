package concurrent_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConcurrent(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Concurrent Suite")
}
