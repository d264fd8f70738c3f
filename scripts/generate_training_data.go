// 离线合成学习差距训练数据。与服务进程无运行时依赖，
// 产出 models/learning_gap_data.csv 供线下训练模型工件。
//
// 用法: go run scripts/generate_training_data.go
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
)

const numSamples = 1000

func main() {
	// 固定种子，数据可复现
	rng := rand.New(rand.NewSource(42))

	if err := os.MkdirAll("models", 0755); err != nil {
		log.Fatalf("create models dir: %v", err)
	}

	f, err := os.Create("models/learning_gap_data.csv")
	if err != nil {
		log.Fatalf("create csv: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	w.Write([]string{
		"quiz_score_prev_topic",
		"time_spent_on_prev_lesson_minutes",
		"num_attempts_on_prev_quiz",
		"struggle_next_concept",
	})

	for i := 0; i < numSamples; i++ {
		score := 30 + rng.Intn(70)
		minutes := 10 + rng.Intn(110)
		attempts := 1 + rng.Intn(4)

		// 低分且用时少，或反复重试，判为吃力
		struggle := 0
		if (score < 60 && minutes < 45) || attempts > 3 {
			struggle = 1
		}

		// 掺 5% 标签噪声，避免数据过于干净
		if rng.Float64() < 0.05 {
			struggle = 1 - struggle
		}

		w.Write([]string{
			strconv.Itoa(score),
			strconv.Itoa(minutes),
			strconv.Itoa(attempts),
			strconv.Itoa(struggle),
		})
	}

	fmt.Printf("Generated %d samples of learning gap data to models/learning_gap_data.csv\n", numSamples)
}
