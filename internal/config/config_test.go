package config_test

import (
	"os"
	"time"

	"landgrid/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	setEnv := func(key, value string) {
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(os.Unsetenv, key)
	}

	requiredEnv := map[string]string{
		"API_PORT":              "8080",
		"NODE_RPC_URL":          "https://rpc.example",
		"DB_CONNECTION_URL":     "postgres://localhost/landgrid",
		"TOKEN_CONTRACT":        "0x1111111111111111111111111111111111111111",
		"RECIPIENT_ADDRESS":     "0x2222222222222222222222222222222222222222",
		"WALLET_ENCRYPTION_KEY": "supersecret",
	}

	BeforeEach(func() {
		for key, value := range requiredEnv {
			setEnv(key, value)
		}
	})

	It("should load the configuration with defaults", func() {
		cfg, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Port).To(Equal("8080"))
		Expect(cfg.NodeRPCURL).To(Equal("https://rpc.example"))
		Expect(cfg.TokenDecimals).To(Equal(6))
		Expect(cfg.LandBasePrice).To(Equal(1.0))
		Expect(cfg.ReceiptWaitAttempts).To(Equal(30))
		Expect(cfg.ReceiptWaitInterval).To(Equal(2 * time.Second))
	})

	It("should honor overrides", func() {
		setEnv("TOKEN_DECIMALS", "18")
		setEnv("LAND_BASE_PRICE", "2.5")
		setEnv("RECEIPT_WAIT_ATTEMPTS", "10")
		setEnv("RECEIPT_WAIT_INTERVAL_SECONDS", "5")
		setEnv("ALLOWED_ORIGINS", "https://game.example")

		cfg, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.TokenDecimals).To(Equal(18))
		Expect(cfg.LandBasePrice).To(Equal(2.5))
		Expect(cfg.ReceiptWaitAttempts).To(Equal(10))
		Expect(cfg.ReceiptWaitInterval).To(Equal(5 * time.Second))
		Expect(cfg.AllowedOrigins).To(Equal("https://game.example"))
	})

	It("should fail when a required variable is missing", func() {
		Expect(os.Unsetenv("TOKEN_CONTRACT")).To(Succeed())

		_, err := config.NewApp()
		Expect(err).To(MatchError(ContainSubstring("TOKEN_CONTRACT")))
	})

	It("should fail on a non-numeric override", func() {
		setEnv("TOKEN_DECIMALS", "six")

		_, err := config.NewApp()
		Expect(err).To(MatchError(ContainSubstring("TOKEN_DECIMALS")))
	})
})

var _ = Describe("LoadTokenRegistry", func() {
	It("should yield a nil registry for an empty path", func() {
		registry, err := config.LoadTokenRegistry("")
		Expect(err).NotTo(HaveOccurred())
		Expect(registry).To(BeNil())
		Expect(registry.Allowed("0x1111111111111111111111111111111111111111")).To(BeTrue())
	})

	It("should fail when the file does not exist", func() {
		_, err := config.LoadTokenRegistry("/nonexistent/tokens.yaml")
		Expect(err).To(MatchError(ContainSubstring("read token registry")))
	})

	When("a registry file is present", func() {
		var path string

		BeforeEach(func() {
			path = GinkgoT().TempDir() + "/tokens.yaml"
			content := "tokens:\n" +
				"  - symbol: USDT\n" +
				"    contract: \"0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA\"\n" +
				"    decimals: 6\n"
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		})

		It("should match contracts case-insensitively", func() {
			registry, err := config.LoadTokenRegistry(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(registry.Allowed("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")).To(BeTrue())
			Expect(registry.Allowed("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")).To(BeFalse())
		})

		It("should fail on malformed yaml", func() {
			Expect(os.WriteFile(path, []byte("tokens: {nope"), 0o600)).To(Succeed())

			_, err := config.LoadTokenRegistry(path)
			Expect(err).To(MatchError(ContainSubstring("parse token registry")))
		})
	})
})
