package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/geph-official/hashmix/libs/hwmix"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// cache of recent digests. "fingerprint-input" => hex string
var digestCache = cache.New(time.Hour, time.Minute*30)

const maxMixBody = 1024 * 1024

func handleMix(w http.ResponseWriter, r *http.Request) {
	if statClient != nil {
		statClient.Increment("hashmix.mix")
	}
	fp := uint64(0)
	if s := r.URL.Query().Get("fingerprint"); s != "" {
		var err error
		fp, err = strconv.ParseUint(s, 16, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	input, err := ioutil.ReadAll(io.LimitReader(r.Body, maxMixBody))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if mixLimiter != nil && len(input) > 0 {
		mixLimiter.WaitN(context.Background(), len(input))
	}
	key := fmt.Sprintf("%x-%v", fp, string(input))
	if hit, ok := digestCache.Get(key); ok {
		fmt.Fprintln(w, hit.(string))
		return
	}
	digest := hex.EncodeToString(hwmix.CustomHashMix(input, int64(fp)))
	digestCache.SetDefault(key, digest)
	log.Debugln("mixed", len(input), "bytes for fingerprint", fp)
	fmt.Fprintln(w, digest)
}

func handleSeed(w http.ResponseWriter, r *http.Request) {
	if statClient != nil {
		statClient.Increment("hashmix.seed")
	}
	fmt.Fprintln(w, hwmix.GetHardwareSeed())
}
